package modellist

// Model represents one language model that can compete in the arena.
type Model struct {
	ID       string
	Display  string
	Provider string
	Enabled  bool
}

// getHardcodedModelList returns the list of models the judge backend knows
// how to orchestrate. The ids double as the wire identifiers sent to the
// code-generation endpoint.
func getHardcodedModelList() []Model {
	return []Model{
		{
			ID:       "o3-mini",
			Display:  "OpenAI o3-mini",
			Provider: "openai",
			Enabled:  true,
		},
		{
			ID:       "o1",
			Display:  "OpenAI o1",
			Provider: "openai",
			Enabled:  true,
		},
		{
			ID:       "claude-3-7-sonnet-20250219",
			Display:  "Claude 3.7 Sonnet",
			Provider: "anthropic",
			Enabled:  true,
		},
		{
			ID:       "gemini-1.5-pro",
			Display:  "Gemini 1.5 Pro",
			Provider: "google",
			Enabled:  true,
		},
	}
}

// ListModels returns all enabled models.
func ListModels() []Model {
	res := make([]Model, 0)
	for _, m := range getHardcodedModelList() {
		if m.Enabled {
			res = append(res, m)
		}
	}
	return res
}

// GetModelByID returns the model with the given id or ErrInvalidModel.
func GetModelByID(id string) (*Model, error) {
	for _, m := range getHardcodedModelList() {
		if m.ID == id && m.Enabled {
			return &m, nil
		}
	}
	return nil, ErrInvalidModel()
}
