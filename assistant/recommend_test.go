package assistant

import (
	"strings"
	"testing"
)

func TestRecommendBounds(t *testing.T) {
	s := newSession()
	reply := recommendFoods(s)

	if len(s.ShownFoods) != maxFoodsPerReply {
		t.Fatalf("shown %d foods, want %d", len(s.ShownFoods), maxFoodsPerReply)
	}
	seen := map[string]bool{}
	for _, f := range s.ShownFoods {
		if seen[f] {
			t.Errorf("food %q drawn twice in one sample", f)
		}
		seen[f] = true
		if !strings.Contains(reply, f) && !strings.Contains(reply, foodDetails[f].Label) {
			t.Errorf("reply missing drawn food %q", f)
		}
	}
	if !strings.Contains(reply, "Eye-Healthy Foods for You") {
		t.Errorf("missing header: %q", reply)
	}
}

func TestRecommendFiltersDislikes(t *testing.T) {
	s := newSession()
	// Dislike everything except one food; the sample must be exactly it.
	for _, f := range allFoods[1:] {
		s.AddDislike(f)
	}

	reply := recommendFoods(s)
	if !strings.Contains(reply, allFoods[0]) {
		t.Errorf("expected %q in reply %q", allFoods[0], reply)
	}
	if len(s.ShownFoods) != 1 {
		t.Errorf("shown %d foods, want 1", len(s.ShownFoods))
	}
}

func TestRecommendDoesNotConsultShownFoods(t *testing.T) {
	s := newSession()
	// The shown-food log is an audit trail, not an exclusion filter: with
	// fewer than 10 available foods the same foods come back every call.
	for _, f := range allFoods[5:] {
		s.AddDislike(f)
	}
	recommendFoods(s)
	recommendFoods(s)
	if len(s.ShownFoods) != 10 {
		t.Errorf("audit log has %d entries, want 10", len(s.ShownFoods))
	}
}

func TestMetadataFoodsDegradeGracefully(t *testing.T) {
	inCatalog := map[string]bool{}
	for _, f := range allFoods {
		inCatalog[f] = true
	}
	// Metadata may reference foods absent from the catalog ("Berries" is a
	// category, not a food); those entries are simply never drawn.
	if inCatalog["Berries"] {
		t.Error("category name leaked into the flattened catalog")
	}
	if len(allFoods) != 35 {
		t.Errorf("catalog has %d foods, want 35", len(allFoods))
	}
	if len(foodCatalog) != 7 {
		t.Errorf("catalog has %d categories, want 7", len(foodCatalog))
	}
}
