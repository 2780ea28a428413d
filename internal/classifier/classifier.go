package classifier

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/navossoc/bayesian"
)

// Document is one (text, tag) training example
type Document struct {
	Text string
	Tag  string
}

// Classifier is a multinomial naive Bayes text classifier over bag-of-words
// features. It is process-wide shared state: Classify runs under a read lock
// while AddExample rebuilds the whole model under a write lock, so readers
// never observe a partially trained model.
type Classifier struct {
	mu      sync.RWMutex
	model   *bayesian.Classifier
	classes []bayesian.Class
	docs    []Document
}

// New creates an untrained classifier. Train must be called before Classify.
func New() *Classifier {
	return &Classifier{}
}

// Train builds the model from the given training set, replacing any
// previous state. At least two distinct tags are required.
func (c *Classifier) Train(docs []Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.docs = append([]Document(nil), docs...)
	return c.rebuild()
}

// Classify returns the best-matching tag for the text together with its
// posterior probability. Ties resolve to whichever class the model scores
// first.
func (c *Classifier) Classify(text string) (string, float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.model == nil {
		return "", 0, fmt.Errorf("classifier is not trained")
	}

	scores, idx, _ := c.model.ProbScores(Tokenize(text))
	return string(c.classes[idx]), scores[idx], nil
}

// AddExample appends a training document and retrains the whole model.
// Each call permanently grows the training set; there is no cap.
func (c *Classifier) AddExample(text, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.docs = append(c.docs, Document{Text: text, Tag: tag})
	return c.rebuild()
}

// TrainingSize reports the current number of training documents
func (c *Classifier) TrainingSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// rebuild retrains from scratch. Callers must hold the write lock.
func (c *Classifier) rebuild() error {
	seen := make(map[string]bool)
	classes := make([]bayesian.Class, 0)
	for _, doc := range c.docs {
		if !seen[doc.Tag] {
			seen[doc.Tag] = true
			classes = append(classes, bayesian.Class(doc.Tag))
		}
	}
	if len(classes) < 2 {
		return fmt.Errorf("need at least 2 distinct tags, got %d", len(classes))
	}

	model := bayesian.NewClassifier(classes...)
	for _, doc := range c.docs {
		model.Learn(Tokenize(doc.Text), bayesian.Class(doc.Tag))
	}

	c.classes = classes
	c.model = model
	return nil
}

// Tokenize lowercases the text and splits it on non-alphanumeric runs
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
