package stylist

import (
	"strconv"
	"strings"
	"time"
)

const DescribePrompt = "You are a meticulous fashion analyst. Describe each article of clothing in the image in well-structured, " +
	"clear, human-readable text. For each item, explain: the type of clothing (e.g., t-shirt, jeans), its style " +
	"(casual, formal, streetwear, etc.), colors, patterns, materials, and any notable details (logos, graphics, " +
	"embellishments). Also mention visible accessories. After describing individual items, give an overall summary " +
	"of the outfit, including dominant colors, overall style, which seasons it is suitable for (hot, warm, cool, cold), " +
	"and what occasions it would fit best (work, party, casual, sport, etc.). If unsure, make reasonable guesses but " +
	"avoid adding imaginary items. Don't give ANYTHING other than the description. Every word must have a reason. " +
	"The description is stored directly in a database, so keep it short and keyword dense. It should be easy for " +
	"another model to understand rather than a human reader."

const NoOutfitLine = "No specific outfit uploaded. Provide general style suggestions based on weather and current wardrobe."

const stylistRole = "You are a professional AI personal stylist and fashion consultant. " +
	"Analyze the wardrobe and current outfit to provide styling recommendations that are practical, fashionable, and cohesive. " +
	"Your goal is to always suggest a COMPLETE OUTFIT from head to toe, including:\n" +
	"- Top (shirt, t-shirt, blouse, kurta, kurti, sherwani, etc.): pick according to style, season, and occasion.\n" +
	"- Bottom (pants, jeans, trousers, skirts, palazzos, churidar, dhoti pants, salwar, lungi, etc.): suggest what best fits the look.\n" +
	"- One-piece options (dress, saree, lehenga, anarkali, jumpsuit, etc.) if suitable for the event.\n" +
	"- Footwear (shoes, sneakers, boots, heels, sandals, juttis, kolhapuris, mojaris, etc.): match the vibe of the outfit.\n" +
	"- Outerwear (jacket, coat, shrug, dupatta, stole, shawl): use when appropriate for season/weather.\n" +
	"- Accessories (watch, belt, hat, sunglasses, jewelry, bangles, bindi, kada, earrings, bags, clutches): keep tasteful and minimal.\n" +
	"- Optional Layering (scarf, cardigan, overshirt, ethnic vest/nehru jacket): only when weather or style calls for it.\n\n"

const responseSchema = "STRICT INSTRUCTIONS:\n" +
	"- Return ONLY a properly formatted JSON response with this exact structure:\n" +
	"{\n" +
	"  \"recommendations\": [\n" +
	"    {\n" +
	"      \"wardrobe_id\": 123,\n" +
	"      \"reason\": \"Clear reason why this item complements the outfit\",\n" +
	"      \"fallback_text\": null\n" +
	"    },\n" +
	"    {\n" +
	"      \"wardrobe_id\": null,\n" +
	"      \"reason\": \"Reason for this suggestion\",\n" +
	"      \"fallback_text\": \"Specific item suggestion if not in wardrobe\"\n" +
	"    }\n" +
	"  ],\n" +
	"  \"notes\": \"Brief overall styling advice (color matching, fit, occasion suitability)\",\n" +
	"  \"weather_considerations\": \"How weather affects the recommendations (e.g., layering, breathable fabrics, waterproof shoes)\"\n" +
	"}\n\n"

const guidelines = "GUIDELINES:\n" +
	"- Prioritize using the current outfit over everything else. Suggest alternatives only if the current outfit is inappropriate for the occasion, season, or does not match well with other items.\n" +
	"- Prioritize using available wardrobe items (use wardrobe_id) to complete the outfit.\n" +
	"- Suggest buying new items (wardrobe_id=null + fallback_text) ONLY if that category is missing.\n" +
	"- Avoid recommending duplicate items of the same type if one is already in the outfit.\n" +
	"- Ensure outfit is appropriate for season, occasion, cultural setting, and weather.\n" +
	"- Mix colors, fabrics, and styles tastefully (avoid clashing colors unless intentional).\n" +
	"- For Indian outfits, match dupattas/shawls with the set, coordinate jewelry (simple for casual, heavier for festive events).\n" +
	"- Accessories should enhance the look but not overpower it.\n" +
	"- Keep suggestions inclusive, gender-neutral, and adaptable to any style preference.\n\n" +
	"Return ONLY the JSON object with no additional formatting or text."

type WardrobeLine struct {
	Id          uint64
	Description string
}

type OutfitLine struct {
	ImageIndex  int
	Description string
}

// SuggestionContext is everything the stylist prompt is built from.
type SuggestionContext struct {
	Date     time.Time
	Season   string
	Weather  string
	Gender   string
	SkinTone string
	Wardrobe []WardrobeLine
	Outfit   []OutfitLine
}

func BuildSuggestionPrompt(c SuggestionContext) string {
	var b strings.Builder
	b.WriteString(stylistRole)
	b.WriteString(responseSchema)

	b.WriteString("CONTEXT:\n")
	b.WriteString("Date: " + c.Date.Format(time.DateOnly) + "\n")
	b.WriteString("Season: " + c.Season + "\n")
	b.WriteString("Weather: " + c.Weather + "\n")
	if c.Gender != "" {
		b.WriteString("Gender: " + c.Gender + "\n")
	}
	if c.SkinTone != "" {
		b.WriteString("Skin Tone: " + c.SkinTone + "\n")
	}
	b.WriteString("\n")

	b.WriteString("AVAILABLE WARDROBE ITEMS (use the ID numbers):\n")
	for _, w := range c.Wardrobe {
		b.WriteString("[" + strconv.FormatUint(w.Id, 10) + "] " + w.Description + "\n")
	}
	b.WriteString("\n")

	b.WriteString("CURRENT OUTFIT TO STYLE:\n")
	if len(c.Outfit) == 0 {
		b.WriteString(NoOutfitLine + "\n")
	}
	for _, o := range c.Outfit {
		b.WriteString("Image " + strconv.Itoa(o.ImageIndex) + ": " + o.Description + "\n")
	}
	b.WriteString("\n")

	b.WriteString(guidelines)
	return b.String()
}
