package model

type ChordRequestBody struct {
	Root   string `json:"root"`
	Symbol string `json:"symbol"`
}

type DetectRequestBody struct {
	Notes string `json:"notes"`
}

type ResolveRequestBody struct {
	Root   string `json:"root"`
	Symbol string `json:"symbol"`
}

type ResolveResponse struct {
	Candidates []string `json:"candidates"`
}

type ProgressionRequestBody struct {
	Key      string   `json:"key"`
	Numerals []string `json:"numerals"`
}

type ProgressionResponse struct {
	Chords   []string `json:"chords"`
	Voicings [][]Note `json:"voicings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
