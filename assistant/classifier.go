package assistant

import (
	"math"
	"regexp"
	"strings"
)

// Classifier maps free text to an intent label with a confidence score.
// It is a TF-IDF (unigram + bigram, English stop words removed) vectorizer
// feeding a one-vs-rest logistic regression, fitted once on trainingData.
// Predict never fails: unseen vocabulary yields a near-zero vector and a
// correspondingly low confidence the dispatcher treats as "uncertain".
type Classifier struct {
	vocab   map[string]int
	idf     []float64
	classes []string
	weights [][]float64 // one weight vector per class
	bias    []float64
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// stopWords mirrors a standard English stop-word list, trimmed to the terms
// that can plausibly show up in short chat messages.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a about above after again all am an and any are as at be because " +
			"been before being below between both but by could did do does " +
			"doing down during each few for from further had has have having " +
			"he her here hers herself him himself his how if in into is it " +
			"its itself just me more most my myself no nor not now of off on " +
			"once only or other our ours ourselves out over own same she " +
			"should so some such than that the their theirs them themselves " +
			"then there these they this those through to too under until up " +
			"very was we were what when where which while who whom why will " +
			"with would you your yours yourself yourselves") {
		stopWords[w] = struct{}{}
	}
}

// terms tokenizes text into stop-word-filtered unigrams plus adjacent bigrams.
func terms(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	uni := raw[:0:0]
	for _, tok := range raw {
		if _, skip := stopWords[tok]; skip {
			continue
		}
		uni = append(uni, tok)
	}
	out := make([]string, 0, 2*len(uni))
	out = append(out, uni...)
	for i := 0; i+1 < len(uni); i++ {
		out = append(out, uni[i]+" "+uni[i+1])
	}
	return out
}

const (
	trainEpochs    = 300
	trainLearnRate = 1.0
	trainL2        = 1e-3
)

// NewClassifier fits the model on the fixed training corpus. Intended to run
// once at process start; inference afterwards is read-only and lock-free.
func NewClassifier() *Classifier {
	c := &Classifier{vocab: make(map[string]int)}

	// Build vocabulary and document frequencies.
	docs := make([][]string, len(trainingData))
	df := []int{}
	for i, ex := range trainingData {
		docs[i] = terms(ex.text)
		seen := map[string]struct{}{}
		for _, t := range docs[i] {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			idx, ok := c.vocab[t]
			if !ok {
				idx = len(c.vocab)
				c.vocab[t] = idx
				df = append(df, 0)
			}
			df[idx]++
		}
	}

	n := float64(len(docs))
	c.idf = make([]float64, len(df))
	for i, d := range df {
		c.idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	// Vectorize the corpus.
	vecs := make([][]float64, len(docs))
	for i, d := range docs {
		vecs[i] = c.vectorize(d)
	}

	// Class list in first-appearance order keeps argmax ties deterministic.
	seen := map[string]struct{}{}
	for _, ex := range trainingData {
		if _, ok := seen[ex.intent]; !ok {
			seen[ex.intent] = struct{}{}
			c.classes = append(c.classes, ex.intent)
		}
	}

	// One binary logistic regression per class, full-batch gradient descent.
	dim := len(c.vocab)
	c.weights = make([][]float64, len(c.classes))
	c.bias = make([]float64, len(c.classes))
	for ci, class := range c.classes {
		w := make([]float64, dim)
		b := 0.0
		for epoch := 0; epoch < trainEpochs; epoch++ {
			gw := make([]float64, dim)
			gb := 0.0
			for i, x := range vecs {
				y := 0.0
				if trainingData[i].intent == class {
					y = 1.0
				}
				p := sigmoid(dot(w, x) + b)
				errTerm := p - y
				for j, xj := range x {
					if xj != 0 {
						gw[j] += errTerm * xj
					}
				}
				gb += errTerm
			}
			inv := 1.0 / n
			for j := range w {
				w[j] -= trainLearnRate * (gw[j]*inv + trainL2*w[j])
			}
			b -= trainLearnRate * gb * inv
		}
		c.weights[ci] = w
		c.bias[ci] = b
	}
	return c
}

// vectorize builds an l2-normalized TF-IDF vector over the fitted vocabulary.
// Terms outside the vocabulary are dropped.
func (c *Classifier) vectorize(termList []string) []float64 {
	v := make([]float64, len(c.vocab))
	for _, t := range termList {
		if idx, ok := c.vocab[t]; ok {
			v[idx] += c.idf[idx]
		}
	}
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range v {
			v[i] /= norm
		}
	}
	return v
}

// Predict returns the best-scoring intent label and its normalized
// probability. Safe for any string input, including empty or gibberish.
func (c *Classifier) Predict(text string) (string, float64) {
	x := c.vectorize(terms(text))
	best := 0
	sum := 0.0
	scores := make([]float64, len(c.classes))
	for i := range c.classes {
		scores[i] = sigmoid(dot(c.weights[i], x) + c.bias[i])
		sum += scores[i]
		if scores[i] > scores[best] {
			best = i
		}
	}
	if sum == 0 {
		return c.classes[0], 1 / float64(len(c.classes))
	}
	return c.classes[best], scores[best] / sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
