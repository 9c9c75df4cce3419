package assistant

import (
	"strings"
	"testing"
)

func newTestAssistant() *Assistant {
	return New(NewCacheStore(0))
}

func TestGreetingIsCaseInsensitive(t *testing.T) {
	a := newTestAssistant()

	want := a.Reply("hi", "Koushik", "s1")
	for _, in := range []string{"Hi", "  hi  ", "HELLO", "hey", "Hlo"} {
		got := a.Reply(in, "Koushik", "s1")
		if !strings.Contains(got, "Hi Koushik!") {
			t.Errorf("Reply(%q) = %q, want greeting", in, got)
		}
	}
	if got := a.Reply("Hi", "Koushik", "s1"); got != want {
		t.Errorf("greeting not idempotent: %q vs %q", got, want)
	}
}

func TestGreetingRequiresExactToken(t *testing.T) {
	a := newTestAssistant()

	got := a.Reply("hi there everyone", "Sam", "s1")
	if strings.Contains(got, "Hi Sam! 👋") {
		t.Errorf("multi-word input matched the literal greeting: %q", got)
	}
}

func TestDislikeAccumulation(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("I don't like milk and dryfruit", "Koushik", "s1")
	if !strings.Contains(reply, "I will not suggest") {
		t.Fatalf("expected dislike confirmation, got %q", reply)
	}
	if !strings.Contains(reply, "milk") {
		t.Errorf("confirmation should name the item, got %q", reply)
	}

	// Recommendation is randomized, so sample it repeatedly.
	for i := 0; i < 50; i++ {
		rec := a.Reply("show me foods", "Koushik", "s1")
		if strings.Contains(rec, "Milk") {
			t.Fatalf("disliked food recommended: %q", rec)
		}
	}
}

func TestDislikeWithoutItemsAsksForClarification(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("i hate", "Koushik", "s1")
	if !strings.Contains(reply, "Please tell me which foods you don't like") {
		t.Fatalf("expected clarification prompt, got %q", reply)
	}
	session := a.Store().Fetch("s1")
	if session.DislikeCount() != 0 {
		t.Errorf("clarification branch mutated the session: %d dislikes", session.DislikeCount())
	}
}

func TestDislikeDedupIsCaseInsensitive(t *testing.T) {
	a := newTestAssistant()

	a.Reply("I hate Milk", "Koushik", "s1")
	a.Reply("i hate milk", "Koushik", "s1")

	session := a.Store().Fetch("s1")
	if session.DislikeCount() != 1 {
		t.Errorf("expected 1 dislike after duplicate, got %d", session.DislikeCount())
	}
}

func TestFoodExhaustionNotice(t *testing.T) {
	a := newTestAssistant()
	session := a.Store().Fetch("s1")
	for _, f := range allFoods {
		session.AddDislike(f)
	}

	reply := a.Reply("food", "Koushik", "s1")
	if !strings.Contains(reply, "marked all foods as disliked") {
		t.Fatalf("expected exhaustion notice, got %q", reply)
	}
	if len(session.ShownFoods) != 0 {
		t.Errorf("exhaustion must not touch the shown-food log, got %d entries", len(session.ShownFoods))
	}
}

func TestReminderWizardCompletes(t *testing.T) {
	a := newTestAssistant()
	session := a.Store().Fetch("s1")

	reply := a.Reply("set reminder", "Koushik", "s1")
	if !strings.Contains(reply, "Set Your Eye Care Reminders") {
		t.Fatalf("expected reminder menu, got %q", reply)
	}
	if session.ReminderStep != StepAwaitingType {
		t.Fatalf("step = %d, want AwaitingType", session.ReminderStep)
	}

	reply = a.Reply("eye drops", "Koushik", "s1")
	if session.ReminderStep != StepAwaitingTime || session.ReminderData.Type != "eye drops" {
		t.Fatalf("after type: step=%d data=%+v", session.ReminderStep, session.ReminderData)
	}
	if !strings.Contains(reply, "What time should I remind you") {
		t.Errorf("expected time prompt, got %q", reply)
	}

	reply = a.Reply("9am", "Koushik", "s1")
	if session.ReminderStep != StepAwaitingFrequency || session.ReminderData.Time != "9am" {
		t.Fatalf("after time: step=%d data=%+v", session.ReminderStep, session.ReminderData)
	}
	if !strings.Contains(reply, "How often do you need this") {
		t.Errorf("expected frequency prompt, got %q", reply)
	}

	reply = a.Reply("daily", "Koushik", "s1")
	if session.ReminderStep != StepIdle {
		t.Fatalf("wizard did not reset, step=%d", session.ReminderStep)
	}
	for _, part := range []string{"eye drops", "9am", "daily"} {
		if !strings.Contains(reply, part) {
			t.Errorf("confirmation missing %q: %q", part, reply)
		}
	}
}

func TestReminderWizardAbsorbsEverything(t *testing.T) {
	a := newTestAssistant()
	session := a.Store().Fetch("s1")

	a.Reply("set reminder", "Koushik", "s1")

	// A greeting mid-wizard is a wizard answer, not a greeting.
	reply := a.Reply("hello", "Koushik", "s1")
	if strings.Contains(reply, "How are you today") {
		t.Fatalf("greeting escaped the wizard: %q", reply)
	}
	if session.ReminderData.Type != "hello" {
		t.Errorf("wizard should store the verbatim answer, got %q", session.ReminderData.Type)
	}
	if session.ReminderStep != StepAwaitingTime {
		t.Errorf("step = %d, want AwaitingTime", session.ReminderStep)
	}
}

func TestEmptyInputSkipsSessionCreation(t *testing.T) {
	a := newTestAssistant()

	for _, in := range []string{"", "   ", "\t\n"} {
		if got := a.Reply(in, "Koushik", "s-empty"); got != emptyInputReply {
			t.Errorf("Reply(%q) = %q, want help prompt", in, got)
		}
	}
	if _, ok := a.Store().Peek("s-empty"); ok {
		t.Error("empty input created a session")
	}
	if n := a.Store().Count(); n != 0 {
		t.Errorf("store holds %d sessions, want 0", n)
	}
}

func TestLowConfidenceFallsBackToCapabilityMenu(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("qwerty zxcvb plonk", "Koushik", "s1")
	if !strings.Contains(reply, "I can help with") {
		t.Fatalf("expected capability menu, got %q", reply)
	}
}

func TestExerciseCatalogReply(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("exercise", "Koushik", "s1")
	if !strings.Contains(reply, "12 eye exercises") {
		t.Fatalf("expected exercise list, got %q", reply)
	}
	for _, e := range exercises {
		if !strings.Contains(reply, e.Name) {
			t.Errorf("exercise list missing %q", e.Name)
		}
	}
}

func TestVisionBranch(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("my vision is blurry lately", "Sam", "s1")
	if !strings.Contains(reply, "Vision concerns detected, Sam") {
		t.Fatalf("expected vision triage prompt, got %q", reply)
	}
}

func TestDefaultNameAndSession(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("hi", "", "")
	if !strings.Contains(reply, "Hi there!") {
		t.Fatalf("expected default name in greeting, got %q", reply)
	}
	if _, ok := a.Store().Peek("default"); !ok {
		t.Error("default session id was not used")
	}
}
