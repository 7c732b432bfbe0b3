package models

// Word is one entry of the read-only word catalog.
type Word struct {
	Text       string   `json:"word" yaml:"word"`
	Syllables  []string `json:"syllables" yaml:"syllables"`
	Image      string   `json:"image" yaml:"image"`
	Difficulty string   `json:"difficulty" yaml:"difficulty"`
	Category   string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// WordFilter narrows word selection. Empty fields are ignored.
type WordFilter struct {
	Difficulty string
	Category   string
}

// Dataset is the on-disk shape of the word catalog file.
type Dataset struct {
	Words []Word `json:"words" yaml:"words"`
}
