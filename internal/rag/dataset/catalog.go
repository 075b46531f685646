package dataset

// Source is one Hugging Face dataset and the column that holds the conversation text.
type Source struct {
	Name       string
	TextColumn string
}

// Catalog is every dataset the index is built from, in ingestion order.
var Catalog = []Source{
	{Name: "Amod/mental_health_counseling_conversations", TextColumn: "text"},
	{Name: "LuangMV97/Empathetic_counseling_Dataset", TextColumn: "conversation"},
	{Name: "ShenLab/MentalChat16K", TextColumn: "conversation"},
	{Name: "to-be/annomi-motivational-interviewing-therapy-conversations", TextColumn: "text"},
	{Name: "IINOVAII/therapy-conversations-combined", TextColumn: "conversation"},
	{Name: "anirudh2403/therapy-conversation-synthetic", TextColumn: "text"},
	{Name: "MeetX/mental-health-dataset-mistral7b", TextColumn: "conversation"},
	{Name: "marmikpandya/mental-health", TextColumn: "text"},
	{Name: "mrfakename/deepseek-synthetic-emotional-support", TextColumn: "conversation"},
	{Name: "dair-ai/emotion", TextColumn: "text"},
	{Name: "AhmedSSoliman/sentiment-analysis-for-mental-health-Combined-Data", TextColumn: "text"},
}

// Lookup finds a catalog entry by dataset name.
func Lookup(name string) (Source, bool) {
	for _, s := range Catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}

// Select resolves names against the catalog. No names means the whole catalog.
func Select(names []string) ([]Source, []string) {
	if len(names) == 0 {
		return Catalog, nil
	}

	var found []Source
	var unknown []string
	for _, n := range names {
		if s, ok := Lookup(n); ok {
			found = append(found, s)
		} else {
			unknown = append(unknown, n)
		}
	}
	return found, unknown
}
