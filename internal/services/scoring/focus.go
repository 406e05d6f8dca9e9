package scoring

import "ApexDesk/internal/domain/models"

var bullFocus = map[string]string{
	"EURUSD": "Watch résistance 1.0880 — cassure confirme prolongation vers 1.0950",
	"XAUUSD": "Zone 2320–2340 clé en résistance — breakout = run vers 2380",
	"NAS100": "Support 21200 à tenir — momentum long si >21400 en M15",
	"US500":  "Breakout du range 5080–5100 déclencherait accélération vers 5150",
}

var bearFocus = map[string]string{
	"EURUSD": "Support 1.0780 sous surveillance — cassure = target 1.0720",
	"XAUUSD": "Break <2290 validerait range baissier vers 2260–2250",
	"NAS100": "Échec <21200 = short vers 20950 — SL serré au-dessus 21300",
	"US500":  "Résistance 5080 tient — short sur rejet vers 4980",
}

func buildFocus(symbol string, bias models.BiasType) string {
	if bias == models.BiasBullish {
		if f, ok := bullFocus[symbol]; ok {
			return f
		}
	}
	if bias == models.BiasBearish {
		if f, ok := bearFocus[symbol]; ok {
			return f
		}
	}
	if bias == models.BiasVolatile {
		return "Volatilité élevée aujourd'hui — attendre la clôture d'une bougie H1 avant positionnement"
	}
	return "Range en cours — identifier les extrêmes pour un setup de breakout ou fade"
}
