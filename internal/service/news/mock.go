package news

import (
	"fmt"
	"time"

	"ApexDesk/internal/domain/models"
)

const rfc1123GMT = "Mon, 02 Jan 2006 15:04:05 GMT"

// mockNews builds the fallback headlines for a symbol. Timestamps are
// relative so the feed always looks fresh.
func mockNews(symbol string) []models.NewsItem {
	now := time.Now().UTC()
	h1ago := now.Add(-1 * time.Hour).Format(rfc1123GMT)
	h3ago := now.Add(-3 * time.Hour).Format(rfc1123GMT)
	h6ago := now.Add(-6 * time.Hour).Format(rfc1123GMT)

	switch symbol {
	case "EURUSD":
		return []models.NewsItem{
			{Title: "EUR/USD : L'euro consolide avant les données CPI américaines", Link: "#", PubDate: h1ago, Source: "ForexLive"},
			{Title: "Fed : Hawkish tone maintenu, pression sur les devises majeures", Link: "#", PubDate: h3ago, Source: "Reuters"},
			{Title: "BCE : Les minutes suggèrent une pause dans les hausses de taux", Link: "#", PubDate: h6ago, Source: "Bloomberg"},
			{Title: "Zone Euro : PMI Services au-dessus des attentes à 52.4", Link: "#", PubDate: h6ago, Source: "MarketWatch"},
		}
	case "XAUUSD":
		return []models.NewsItem{
			{Title: "Or : Résistance clé des 2340$ testée dans les échanges asiatiques", Link: "#", PubDate: h1ago, Source: "Kitco"},
			{Title: "Gold : Les banques centrales maintiennent leurs achats record", Link: "#", PubDate: h3ago, Source: "Reuters"},
			{Title: "XAUUSD : Corrélation inverse avec le DXY reste forte", Link: "#", PubDate: h6ago, Source: "ForexFactory"},
			{Title: "Métaux précieux : WGC rapport T1 — demande en hausse de 3%", Link: "#", PubDate: h6ago, Source: "World Gold Council"},
		}
	case "NVDA":
		return []models.NewsItem{
			{Title: "NVIDIA : Demande GPU H200 dépasse l'offre selon les analystes", Link: "#", PubDate: h1ago, Source: "Bloomberg"},
			{Title: "NVDA : Price target relevé à $950 par Morgan Stanley", Link: "#", PubDate: h3ago, Source: "CNBC"},
			{Title: "Intelligence Artificielle : NVIDIA consolide sa position dominante dans les datacenters", Link: "#", PubDate: h6ago, Source: "WSJ"},
			{Title: "NVDA : Partenariat stratégique annoncé avec un major cloud provider", Link: "#", PubDate: h6ago, Source: "TechCrunch"},
		}
	case "NAS100":
		return []models.NewsItem{
			{Title: "Nasdaq 100 : Les Magnificent 7 portent l'indice vers de nouveaux sommets", Link: "#", PubDate: h1ago, Source: "Bloomberg"},
			{Title: "Tech sector : Rotation vers les valeurs IA et semi-conducteurs", Link: "#", PubDate: h3ago, Source: "Reuters"},
			{Title: "NAS100 : Support 21200 tenu, momentum haussier intact", Link: "#", PubDate: h6ago, Source: "TradingView"},
			{Title: "Fed : Scenario \"higher for longer\" pèse sur les valorisations growth", Link: "#", PubDate: h6ago, Source: "FT"},
		}
	case "TSLA":
		return []models.NewsItem{
			{Title: "Tesla : Livraisons Q1 sous les attentes, -8% en prémarket", Link: "#", PubDate: h1ago, Source: "Reuters"},
			{Title: "TSLA : Musk annonce focus sur l'autonomie et les robots", Link: "#", PubDate: h3ago, Source: "Bloomberg"},
			{Title: "Tesla : Compétition EV chinoise (BYD) gagne des parts de marché", Link: "#", PubDate: h6ago, Source: "WSJ"},
		}
	}

	return []models.NewsItem{
		{Title: fmt.Sprintf("%s : Marché en observation avant les données économiques clés", symbol), Link: "#", PubDate: h1ago, Source: "Markets"},
		{Title: fmt.Sprintf("%s : Volumes modérés, consolidation en cours", symbol), Link: "#", PubDate: h3ago, Source: "Bloomberg"},
		{Title: fmt.Sprintf("%s : Niveaux techniques importants à surveiller cette semaine", symbol), Link: "#", PubDate: h6ago, Source: "TradingView"},
	}
}
