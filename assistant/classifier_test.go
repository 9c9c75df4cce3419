package assistant

import "testing"

func TestPredictKnownUtterances(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		text string
		want string
	}{
		{"hello", IntentGreeting},
		{"hate", IntentDislike},
		{"vision check", IntentVisionCheck},
		{"set reminder", IntentSetReminder},
		{"show me foods", IntentFood},
		{"eye exercises", IntentExercises},
		{"give eye care tips", IntentEyeCareTips},
	}
	for _, tc := range cases {
		got, conf := c.Predict(tc.text)
		if got != tc.want {
			t.Errorf("Predict(%q) = %q (conf %.2f), want %q", tc.text, got, conf, tc.want)
		}
		if conf < 0 || conf > 1 {
			t.Errorf("Predict(%q) confidence %v out of [0,1]", tc.text, conf)
		}
	}
}

func TestPredictUnseenVocabularyHasLowConfidence(t *testing.T) {
	c := NewClassifier()

	_, conf := c.Predict("qwerty zxcvb plonk")
	if conf >= confidenceThreshold {
		t.Errorf("gibberish confidence %.3f, want < %.2f", conf, confidenceThreshold)
	}
}

func TestPredictNeverPanicsOnDegenerateInput(t *testing.T) {
	c := NewClassifier()

	for _, in := range []string{"", " ", "!!!", "a", "ééé"} {
		label, conf := c.Predict(in)
		if label == "" {
			t.Errorf("Predict(%q) returned empty label", in)
		}
		if conf < 0 || conf > 1 {
			t.Errorf("Predict(%q) confidence %v out of [0,1]", in, conf)
		}
	}
}

func TestTermsProducesUnigramsAndBigrams(t *testing.T) {
	got := terms("food for eye health")
	// "for" is a stop word; bigrams come from the filtered sequence.
	want := map[string]bool{
		"food": true, "eye": true, "health": true,
		"food eye": true, "eye health": true,
	}
	if len(got) != len(want) {
		t.Fatalf("terms = %v, want %d terms", got, len(want))
	}
	for _, term := range got {
		if !want[term] {
			t.Errorf("unexpected term %q in %v", term, got)
		}
	}
}
