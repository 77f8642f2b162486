package contract

// Contract is the seven-field JSON shape the completion step is instructed to
// emit. Fields are never null; the empty string is the "absent" sentinel.
type Contract struct {
	DetectedLanguage string `json:"detected_language"`
	OriginalText     string `json:"original_text"`
	SummarizedText   string `json:"summarized_text"`
	JaText           string `json:"ja_text"`
	TargetText       string `json:"target_text"`
	SpeakOriginal    string `json:"speak_original"`
	SpeakTarget      string `json:"speak_target"`
}
