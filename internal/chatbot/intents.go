package chatbot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/varun8487/ai-ml/internal/classifier"
)

// Intent is one static intent definition: a tag, the pattern strings the
// classifier trains on, and the candidate responses for that tag.
type Intent struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// IntentSet holds the loaded intent definitions. Read-only after load;
// feedback-driven retraining grows the in-memory classifier, never this set.
type IntentSet struct {
	intents []Intent
	byTag   map[string]*Intent
}

type intentsFile struct {
	Intents []Intent `json:"intents"`
}

// LoadIntents reads intent definitions from a JSON file
func LoadIntents(path string) (*IntentSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intents file: %w", err)
	}

	var file intentsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse intents file: %w", err)
	}
	if len(file.Intents) == 0 {
		return nil, fmt.Errorf("intents file %s defines no intents", path)
	}

	set := &IntentSet{
		intents: file.Intents,
		byTag:   make(map[string]*Intent, len(file.Intents)),
	}
	for i := range set.intents {
		intent := &set.intents[i]
		if intent.Tag == "" {
			return nil, fmt.Errorf("intent %d has an empty tag", i)
		}
		if len(intent.Patterns) == 0 || len(intent.Responses) == 0 {
			return nil, fmt.Errorf("intent %q needs at least one pattern and one response", intent.Tag)
		}
		set.byTag[intent.Tag] = intent
	}

	return set, nil
}

// Find returns the intent definition for a tag, or nil when none matches
func (s *IntentSet) Find(tag string) *Intent {
	return s.byTag[tag]
}

// TrainingDocs flattens every (pattern, tag) pair into classifier documents
func (s *IntentSet) TrainingDocs() []classifier.Document {
	var docs []classifier.Document
	for _, intent := range s.intents {
		for _, pattern := range intent.Patterns {
			docs = append(docs, classifier.Document{Text: pattern, Tag: intent.Tag})
		}
	}
	return docs
}

// Len reports the number of intent definitions
func (s *IntentSet) Len() int {
	return len(s.intents)
}
