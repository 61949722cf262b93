package domain

// Document is one uploaded text file, still in its raw byte form.
type Document struct {
	Name    string
	Content []byte
}

// SentenceBatch is the ordered concatenation of per-document sentences
// across one request.
type SentenceBatch struct {
	Sentences []string `json:"sentences"`
}

// NewSentenceBatch returns an empty batch whose Sentences marshal as [] rather than null.
func NewSentenceBatch() *SentenceBatch {
	return &SentenceBatch{Sentences: make([]string, 0)}
}

// Append adds one document's sentences to the end of the batch.
func (b *SentenceBatch) Append(sentences ...string) {
	b.Sentences = append(b.Sentences, sentences...)
}

// Len returns the number of sentences in the batch.
func (b *SentenceBatch) Len() int {
	return len(b.Sentences)
}
