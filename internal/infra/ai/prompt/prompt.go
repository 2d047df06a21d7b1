package prompt

import "fmt"

// SystemInstruction accompanies every classification request.
const SystemInstruction = "Je bent een expert in cyber security. Je antwoordt altijd in valide JSON formaat."

// Build produces the full analysis instruction for one piece of user input.
// The input is embedded verbatim inside a delimited section; callers must
// reject empty input before invoking. No sanitization against prompt
// injection is attempted.
func Build(userInput string) string {
	return fmt.Sprintf(template, userInput)
}

// The template states the task, enumerates the exact JSON shape with field
// names, enum values and count constraints, and forbids markdown fencing.
const template = `Je bent een backend API die JSON teruggeeft voor een Scam Checker dashboard.
Analyseer de volgende input op fraude, phishing en veiligheidsrisico's.

Input om te analyseren:
"%s"

Geef GEEN markdown opmaak. Geef ALLEEN een valide JSON object terug met exact deze structuur:

{
  "score": nummer 0-100 (waarbij 100 zeker scam is en 0 zeker veilig),
  "riskLevel": "LAAG", "MIDDEN" of "HOOG",
  "summary": "Een korte samenvatting van 1 of 2 zinnen over de conclusie.",
  "checks": [
    {
      "category": "URL & Domein",
      "status": "safe", "warning" of "danger",
      "detail": "Uitleg over domein controle..."
    },
    {
      "category": "Taal & Grammatica",
      "status": "safe", "warning" of "danger",
      "detail": "Uitleg over taalgebruik..."
    },
    {
      "category": "Urgentie & Druk",
      "status": "safe", "warning" of "danger",
      "detail": "Wordt er druk uitgeoefend?"
    },
    {
      "category": "Imitatie & Afzender",
      "status": "safe", "warning" of "danger",
      "detail": "Lijkt het op een bekend bedrijf?"
    }
  ],
  "brokenLinks": ["lijst", "van", "kapotte", "urls", "of", "leeg"],
  "tips": ["tip 1", "tip 2", "tip 3", "max 5 tips, gericht op jongeren"]
}

Zorg dat de analyse streng is. Controleer specifiek op broken links of malgevormde URL's en zet die in de 'brokenLinks' array.`
