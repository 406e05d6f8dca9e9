package briefing

import (
	"fmt"
	"math"
	"strings"

	"ApexDesk/internal/domain/models"
	"ApexDesk/pkg/util"
)

// defaultAssets is the curated pre-market list used when the request does
// not pin its own selection.
var defaultAssets = []string{
	"EURUSD", "XAUUSD", "TSLA", "NVDA", "AMD", "MU",
	"NAS100", "US500", "AAPL", "META", "AMZN", "MSFT", "GOOGL",
}

// DefaultAssets returns the default briefing watchlist.
func DefaultAssets() []string {
	out := make([]string, len(defaultAssets))
	copy(out, defaultAssets)
	return out
}

func fmtIndicator(v *float64) string {
	if v == nil {
		return "?"
	}
	return trimFloat(*v)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// formatAssetLine renders one snapshot as a compact prompt line: spot,
// daily indicators, the last 3 daily candles and the intraday H1 picture.
func formatAssetLine(snap models.AssetSnapshot) string {
	dir := "▲"
	if snap.ChangePct < 0 {
		dir = "▼"
	}

	d1 := snap.BarsD1
	if len(d1) > 3 {
		d1 = d1[len(d1)-3:]
	}
	d1Lines := make([]string, 0, len(d1))
	for _, b := range d1 {
		d1Lines = append(d1Lines, fmt.Sprintf("%s|O:%s|H:%s|L:%s|C:%s",
			b.Date, trimFloat(b.Open), trimFloat(b.High), trimFloat(b.Low), trimFloat(b.Close)))
	}

	h1Trend := "?"
	if snap.H1Trend != nil {
		h1Trend = string(*snap.H1Trend)
	}

	return fmt.Sprintf(
		"%s: prix=%s(%s%s%%) EMA20=%s EMA50=%s RSI=%s ATR=%s 52W[%s-%s] D1(3j):%s H1(%d barres): EMA9=%s EMA21=%s RSI=%s ATR=%s trend=%s",
		snap.Symbol,
		trimFloat(snap.Price), dir, trimFloat(math.Abs(snap.ChangePct)),
		fmtIndicator(snap.EMA20), fmtIndicator(snap.EMA50),
		fmtIndicator(snap.RSI14), fmtIndicator(snap.ATR14),
		trimFloat(snap.Low52W), trimFloat(snap.High52W),
		strings.Join(d1Lines, " / "),
		len(snap.BarsH1),
		fmtIndicator(snap.H1EMA9), fmtIndicator(snap.H1EMA21),
		fmtIndicator(snap.H1RSI14), fmtIndicator(snap.H1ATR14),
		h1Trend,
	)
}

// BuildPrompt assembles the full French analyst prompt for the given slot.
// When snapshots is empty the model is told to rely on its own knowledge.
func BuildPrompt(snapshots []models.AssetSnapshot, assets []string, slot, morningContext string) string {
	now := util.ParisNow()
	today := util.DayFR(now)
	timeHM := util.TimeHHMM(now)

	if len(assets) == 0 {
		assets = DefaultAssets()
	}

	bySymbol := make(map[string]models.AssetSnapshot, len(snapshots))
	for _, s := range snapshots {
		bySymbol[s.Symbol] = s
	}
	hasData := len(snapshots) > 0

	var marketSection string
	if hasData {
		var b strings.Builder
		fmt.Fprintf(&b, "\n## DONNÉES DE MARCHÉ EN TEMPS RÉEL (Yahoo Finance, %s heure Paris)\n", timeHM)
		for i, sym := range assets {
			if i > 0 {
				b.WriteString("\n")
			}
			if snap, ok := bySymbol[sym]; ok {
				b.WriteString(formatAssetLine(snap))
			} else {
				fmt.Fprintf(&b, "### %s\n- Données indisponibles", sym)
			}
		}
		marketSection = b.String()
	}

	dataInstruction := "Pas de données temps réel. Utilise ta connaissance des niveaux actuels du marché."
	if hasData {
		dataInstruction = "Données réelles Yahoo Finance ci-dessous. Utilise EXCLUSIVEMENT ces chiffres pour les niveaux (pas de niveaux inventés)."
	}

	var slotInstruction string
	switch slot {
	case "8h":
		slotInstruction = "\n## CONTEXTE DU BRIEFING\nBRIEFING PRÉ-MARCHÉ 8H — Analyse initiale de la journée avant l'ouverture des sessions London et New York. Fournis une analyse prospective complète : structure du marché, niveaux clés, biais directionnel et setup du jour."
	default: // 14h
		morningCtx := ""
		if strings.TrimSpace(morningContext) != "" {
			morningCtx = fmt.Sprintf("\n## ANALYSE DU BRIEFING DU MATIN (8H)\n%s\n\n", strings.TrimSpace(morningContext))
		}
		slotInstruction = fmt.Sprintf("\n## CONTEXTE DU BRIEFING\nMISE À JOUR MI-SESSION 14H — Les marchés européens sont ouverts depuis plusieurs heures. New York ouvre dans les prochaines minutes.%sCompare l'évolution depuis ce matin : note ce qui a changé (prix, structure, momentum, annonces économiques éventuelles). Si la thèse du matin est toujours valide, confirme-la. Si les conditions ont évolué, adapte l'analyse, le biais et les niveaux en conséquence. Mentionne explicitement dans \"analysis\" si la vue du matin est maintenue ou modifiée.", morningCtx)
	}

	dataSource := "estimate"
	if hasData {
		dataSource = "live"
	}

	samplePrice := 0.0
	if snap, ok := bySymbol["EURUSD"]; ok {
		samplePrice = snap.Price
	}

	return fmt.Sprintf(`Analyste trading senior (forex, tech, indices). %s, %s Paris.
%s
%s
%s

Réponds UNIQUEMENT en JSON valide, sans markdown ni texte autour. Génère les %d actifs dans cet ordre : %s.

Format exact (sois concis, 1-2 phrases par champ texte) :
{"generated_at":"%s","data_source":"%s","macro_summary":"3 phrases max sur contexte macro actuel","assets":[{"symbol":"EURUSD","bias":"bullish|bearish|range|volatile","conviction":7,"price":%s,"analysis":"Structure marché + EMAs + RSI en 2 phrases","support":"niveau","resistance":"niveau","key_level":"OB/FVG/Pivot clé","catalysts":["cat1"],"setup":"Direction, entrée, TP, SL concrets"}]}`,
		today, timeHM,
		slotInstruction,
		dataInstruction,
		marketSection,
		len(assets), strings.Join(assets, ", "),
		timeHM, dataSource, trimFloat(samplePrice),
	)
}
