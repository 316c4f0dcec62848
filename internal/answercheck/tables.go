package answercheck

// openEndedMarkers flag an expected answer as open-ended: any genuine
// attempt by the student is accepted for such questions.
var openEndedMarkers = []string{
	"answers will vary",
	"answers may vary",
	"will vary",
	"depends on",
	"sample answer",
	"students own answer",
	"any reasonable answer",
	"open ended",
}

// noEffortAnswers is the fixed rejection set of no-effort replies,
// matched after normalization (so "I don't know" and "???" land here).
var noEffortAnswers = map[string]struct{}{
	"":            {},
	"idk":         {},
	"i dont know": {},
	"dont know":   {},
	"do not know": {},
	"not sure":    {},
	"unsure":      {},
	"no idea":     {},
	"dunno":       {},
	"nothing":     {},
	"na":          {},
	"none":        {},
}

// variationTable maps canonical terms to accepted paraphrases. Fixed
// table; matches run over normalized text.
var variationTable = map[string][]string{
	"photosynthesis": {
		"photo synthesis",
		"plants making food",
		"making food from sunlight",
		"converting sunlight into energy",
		"how plants make food",
	},
	"mitochondria": {
		"mitochondrion",
		"powerhouse of the cell",
		"cell powerhouse",
		"power house of the cell",
	},
	"evaporation": {
		"evaporating",
		"water turning into vapor",
		"liquid turning into gas",
		"water vapor rising",
	},
	"condensation": {
		"condensing",
		"vapor turning into liquid",
		"gas turning into liquid",
	},
	"democracy": {
		"democratic government",
		"rule by the people",
		"government by the people",
		"people choosing their leaders",
	},
	"gravity": {
		"gravitational force",
		"force of gravity",
		"force that pulls things down",
	},
	"herbivore": {
		"plant eater",
		"animal that eats plants",
		"eats only plants",
	},
	"carnivore": {
		"meat eater",
		"animal that eats meat",
		"eats only meat",
	},
	"ecosystem": {
		"eco system",
		"community of living things",
		"habitat and its organisms",
	},
}

// synonymTable maps a word to domain synonyms accepted as keyword
// matches. Small and deliberately broad; tuned for younger learners.
var synonymTable = map[string][]string{
	"water":  {"irrigation", "hydration", "moisture", "rain", "rainfall"},
	"food":   {"nutrition", "nourishment", "crops", "nutrients"},
	"sun":    {"sunlight", "solar", "sunshine"},
	"heat":   {"warmth", "temperature", "thermal"},
	"grow":   {"growth", "growing", "development"},
	"energy": {"power", "fuel"},
	"people": {"humans", "population", "society"},
	"plant":  {"plants", "vegetation", "flora"},
	"animal": {"animals", "creature", "fauna", "wildlife"},
	"big":    {"large", "huge", "enormous"},
	"small":  {"little", "tiny"},
}

// keyConcepts is the fixed cross-subject concept vocabulary used for
// concept-coverage scoring.
var keyConcepts = []string{
	"photosynthesis", "gravity", "energy", "water", "cell", "atom",
	"molecule", "ecosystem", "climate", "evaporation", "condensation",
	"democracy", "government", "revolution", "economy", "population",
	"fraction", "equation", "multiply", "divide", "temperature",
	"oxygen", "carbon", "sunlight", "habitat", "continent", "ocean",
}

// geoConcepts is the narrower concept set for population/geography
// questions; any overlap accepts.
var geoConcepts = []string{
	"population", "people", "coastal", "coast", "climate", "weather",
	"city", "cities", "urban", "rural", "density", "migration",
	"region", "land", "sea", "ocean", "river", "mountain", "temperature",
	"farming", "trade", "resources",
}

// geoCues in the correct answer's vocabulary mark a question as belonging
// to the population/geography family.
var geoCues = []string{"population", "coastal", "climate", "density", "migration", "urban", "rural"}
