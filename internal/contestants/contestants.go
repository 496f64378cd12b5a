// Package contestants holds the fixed ESC 2025 lineup. The entries are
// read-only reference data: they are never persisted, and their order is the
// running order, which defines next/previous navigation (circular).
package contestants

import "net/url"

// Contestant is one rateable entry in the lineup.
type Contestant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Song    string `json:"song"`
	Country string `json:"country"`
	FlagURL string `json:"flag_url"`
}

// PlaceholderFlagURL is served for countries with no flag asset mapping.
const PlaceholderFlagURL = "/flags/placeholder.svg"

var flagFiles = map[string]string{
	"Albania":        "Flag_of_Albania.svg",
	"Armenia":        "Flag_of_Armenia.svg",
	"Australia":      "Flag_of_Australia_(converted).svg",
	"Austria":        "Flag_of_Austria.svg",
	"Azerbaijan":     "Flag_of_Azerbaijan.svg",
	"Belgium":        "Flag_of_Belgium.svg",
	"Croatia":        "Flag_of_Croatia.svg",
	"Cyprus":         "Flag_of_Cyprus.svg",
	"Czechia":        "Flag_of_the_Czech_Republic.svg",
	"Denmark":        "Flag_of_Denmark.svg",
	"Estonia":        "Flag_of_Estonia.svg",
	"Finland":        "Flag_of_Finland.svg",
	"France":         "Flag_of_France.svg",
	"Georgia":        "Flag of Georgia.svg",
	"Germany":        "Flag_of_Germany.svg",
	"Greece":         "Flag_of_Greece.svg",
	"Iceland":        "Flag_of_Iceland.svg",
	"Ireland":        "Flag_of_Ireland.svg",
	"Israel":         "Flag_of_Israel.svg",
	"Italy":          "Flag_of_Italy.svg",
	"Latvia":         "Flag_of_Latvia.svg",
	"Lithuania":      "Flag_of_Lithuania.svg",
	"Luxembourg":     "Flag_of_Luxembourg.svg",
	"Malta":          "Flag of Malta.svg",
	"Montenegro":     "Flag_of_Montenegro.svg",
	"Netherlands":    "Flag_of_the_Netherlands.svg",
	"Norway":         "Flag of Norway.svg",
	"Poland":         "Flag_of_Poland.svg",
	"Portugal":       "Flag_of_Portugal.svg",
	"San Marino":     "Flag_of_San_Marino.svg",
	"Serbia":         "Flag_of_Serbia.svg",
	"Slovenia":       "Flag_of_Slovenia.svg",
	"Spain":          "Flag_of_Spain.svg",
	"Sweden":         "Flag_of_Sweden.svg",
	"Switzerland":    "Flag_of_Switzerland_(Pantone).svg",
	"Ukraine":        "Flag_of_Ukraine.svg",
	"United Kingdom": "Flag_of_the_United_Kingdom_(1-2).svg",
}

func flagURL(country string) string {
	file, ok := flagFiles[country]
	if !ok || file == "" {
		return PlaceholderFlagURL
	}
	return "/flags/" + url.PathEscape(file)
}

func entry(id, name, song, country string) Contestant {
	return Contestant{ID: id, Name: name, Song: song, Country: country, FlagURL: flagURL(country)}
}

// lineup is in running order.
var lineup = []Contestant{
	entry("esc2025_1", "Shkodra Elektronike", "Zjerm", "Albania"),
	entry("esc2025_2", "Parg", "Survivor", "Armenia"),
	entry("esc2025_3", "Go-Jo", "Milkshake Man", "Australia"),
	entry("esc2025_4", "JJ", "Wasted Love", "Austria"),
	entry("esc2025_5", "Mamagama", "Run with U", "Azerbaijan"),
	entry("esc2025_6", "Red Sebastian", "Strobe Lights", "Belgium"),
	entry("esc2025_7", "Marko Bošnjak", "Poison Cake", "Croatia"),
	entry("esc2025_8", "Theo Evan", "Shh", "Cyprus"),
	entry("esc2025_9", "Adonxs", "Kiss Kiss Goodbye", "Czechia"),
	entry("esc2025_10", "Sissal", "Hallucination", "Denmark"),
	entry("esc2025_11", "Tommy Cash", "Espresso Macchiato", "Estonia"),
	entry("esc2025_12", "Erika Vikman", "Ich komme", "Finland"),
	entry("esc2025_13", "Louane", "Maman", "France"),
	entry("esc2025_14", "Mariam Shengelia", "Freedom", "Georgia"),
	entry("esc2025_15", "Abor & Tynna", "Baller", "Germany"),
	entry("esc2025_16", "Klavdia", "Asteromata", "Greece"),
	entry("esc2025_17", "Væb", "Róa", "Iceland"),
	entry("esc2025_18", "Emmy", "Laika Party", "Ireland"),
	entry("esc2025_19", "Yuval Raphael", "New Day Will Rise", "Israel"),
	entry("esc2025_20", "Lucio Corsi", "Volevo essere un duro", "Italy"),
	entry("esc2025_21", "Tautumeitas", "Bur man laimi", "Latvia"),
	entry("esc2025_22", "Katarsis", "Tavo akys", "Lithuania"),
	entry("esc2025_23", "Laura Thorn", "La poupée monte le son", "Luxembourg"),
	entry("esc2025_24", "Miriana Conte", "Serving", "Malta"),
	entry("esc2025_25", "Nina Žižić", "Dobrodošli", "Montenegro"),
	entry("esc2025_26", "Claude", "C'est la vie", "Netherlands"),
	entry("esc2025_27", "Kyle Alessandro", "Lighter", "Norway"),
	entry("esc2025_28", "Justyna Steczkowska", "Gaja", "Poland"),
	entry("esc2025_29", "Napa", "Deslocado", "Portugal"),
	entry("esc2025_30", "Gabry Ponte", "Tutta l'Italia", "San Marino"),
	entry("esc2025_31", "Princ", "Mila", "Serbia"),
	entry("esc2025_32", "Klemen", "How Much Time Do We Have Left", "Slovenia"),
	entry("esc2025_33", "Melody", "Esa diva", "Spain"),
	entry("esc2025_34", "KAJ", "Bara bada bastu", "Sweden"),
	entry("esc2025_35", "Zoë Më", "Voyage", "Switzerland"),
	entry("esc2025_36", "Ziferblat", "Bird of Pray", "Ukraine"),
	entry("esc2025_37", "Remember Monday", "What the Hell Just Happened?", "United Kingdom"),
}

var indexByID = func() map[string]int {
	m := make(map[string]int, len(lineup))
	for i, c := range lineup {
		m[c.ID] = i
	}
	return m
}()

// All returns the lineup in running order.
func All() []Contestant {
	out := make([]Contestant, len(lineup))
	copy(out, lineup)
	return out
}

// Count returns the number of entries in the lineup.
func Count() int {
	return len(lineup)
}

// ByID looks up a contestant; ok is false for unknown ids.
func ByID(id string) (Contestant, bool) {
	i, ok := indexByID[id]
	if !ok {
		return Contestant{}, false
	}
	return lineup[i], true
}

// OrderIndex returns the zero-based running-order position of id, or -1 if
// the id is unknown.
func OrderIndex(id string) int {
	i, ok := indexByID[id]
	if !ok {
		return -1
	}
	return i
}

// NextID returns the id after the given one in running order, wrapping from
// the last entry to the first. Unknown ids return "".
func NextID(id string) string {
	i, ok := indexByID[id]
	if !ok {
		return ""
	}
	return lineup[(i+1)%len(lineup)].ID
}

// PrevID returns the id before the given one in running order, wrapping
// from the first entry to the last. Unknown ids return "".
func PrevID(id string) string {
	i, ok := indexByID[id]
	if !ok {
		return ""
	}
	return lineup[(i-1+len(lineup))%len(lineup)].ID
}
