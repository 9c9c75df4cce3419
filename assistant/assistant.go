package assistant

import (
	"fmt"
	"strings"
)

// Assistant is the rule-based / ML-assisted eye-health chat assistant. It is
// a pure function over the supplied arguments plus the injected session
// store: no I/O, no errors, always a reply string.
type Assistant struct {
	classifier *Classifier
	store      SessionStore
}

// confidenceThreshold below which the dispatcher falls back to the capability
// menu instead of acting on a probably-wrong label.
const confidenceThreshold = 0.55

const emptyInputReply = "I'm here to help! Ask me about eye health, foods, exercises, or reminders. 👀"

// New fits the classifier and wires the session store. The one-time fit
// happens here so request-time calls never pay for it.
func New(store SessionStore) *Assistant {
	if store == nil {
		store = NewCacheStore(DefaultSessionTTL)
	}
	return &Assistant{
		classifier: NewClassifier(),
		store:      store,
	}
}

// Store exposes the session store, mainly for the surrounding web layer.
func (a *Assistant) Store() SessionStore {
	return a.store
}

// Reply computes the assistant's answer to one inbound message. All session
// mutation happens synchronously within this call; the caller is expected to
// serialize requests for the same session id.
//
// Precedence: empty-input guard, dislike handling, active reminder wizard,
// literal greeting, then classifier-driven branches with keyword overrides,
// then the confidence-gated fallback.
func (a *Assistant) Reply(userText, patientName, sessionID string) string {
	if strings.TrimSpace(userText) == "" {
		// No session is created for no-op pings.
		return emptyInputReply
	}
	if patientName == "" {
		patientName = "there"
	}
	if sessionID == "" {
		sessionID = "default"
	}

	session := a.store.Fetch(sessionID)
	lower := strings.ToLower(strings.TrimSpace(userText))

	if IsDislikeMessage(lower) {
		return a.handleDislike(session, patientName, lower)
	}

	// While the wizard is mid-flight it absorbs every message, greetings and
	// other intents included.
	if session.ReminderStep != StepIdle {
		return advanceReminder(session, userText)
	}

	// Only the four literal tokens count as a greeting; "hi there everyone"
	// falls through to the classifier.
	switch lower {
	case "hi", "hello", "hey", "hlo":
		return fmt.Sprintf("Hi %s! 👋 How are you today?", patientName)
	}

	intent, confidence := a.classifier.Predict(lower)

	if intent == IntentFood || strings.Contains(lower, "food") {
		return recommendFoods(session)
	}

	if intent == IntentExercises || strings.Contains(lower, "exercise") {
		return renderExercises()
	}

	if wantsReminder(intent, lower) {
		return advanceReminder(session, userText)
	}

	if intent == IntentVisionCheck || strings.Contains(lower, "vision") {
		return fmt.Sprintf("👀 Vision concerns detected, %s!\n\nCan you tell me more? (e.g., blur, difficulty reading, headache)", patientName)
	}

	if intent == IntentEyeCareTips || strings.Contains(lower, "care") {
		return eyeCareTips
	}

	if confidence < confidenceThreshold {
		return fmt.Sprintf("I can help with:\n✅ Foods\n✅ Exercises\n✅ Reminders\n✅ Eye Care Tips\n\nWhat would you like, %s? 😊", patientName)
	}

	return fmt.Sprintf("I'm not sure about that, %s. Ask me about foods, exercises, reminders, or vision tips! 👀", patientName)
}

// handleDislike merges extracted items into the session's dislike list, or
// asks for clarification when nothing could be extracted. The clarification
// branch leaves the session untouched.
func (a *Assistant) handleDislike(session *Session, patientName, lowerText string) string {
	items := ExtractDislikedItems(lowerText)
	if len(items) == 0 {
		return fmt.Sprintf("I understand %s. Please tell me which foods you don't like.", patientName)
	}
	for _, item := range items {
		session.AddDislike(item)
	}
	return fmt.Sprintf("Got it %s! 😊 I will not suggest %s.", patientName, strings.Join(items, " and "))
}

func renderExercises() string {
	var sb strings.Builder
	for i, e := range exercises {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "💪 %s: %s - %s", e.Name, e.Duration, e.Benefit)
	}
	return fmt.Sprintf("Here are your 12 eye exercises:\n%s\n\nType 'exercise <name>' for steps! 👀", sb.String())
}

const eyeCareTips = `
👁️ **Complete Eye Care Guide for Kids** 👁️

🔵 **Screen Time Management:**
  ✓ 20-20-20 Rule: Every 20 mins → Look 20 feet away for 20 seconds
  ✓ Keep screen 18-24 inches away from eyes
  ✓ Adjust brightness & contrast for comfort
  ✓ Limit daily screen to 2 hours max

📖 **Reading & Homework:**
  ✓ Use good lighting (natural light preferred)
  ✓ Keep books 10-12 inches from eyes
  ✓ Sit up straight with good posture
  ✓ Take breaks every 30 minutes

🥗 **Nutrition Tips:**
  ✓ Eat carrots, spinach, berries daily
  ✓ Include fish (salmon, tuna) 2-3x/week
  ✓ Drink 6-8 glasses of water daily
  ✓ Limit sugary drinks & snacks

🏃 **Physical Activity:**
  ✓ Play outdoors 1-2 hours daily
  ✓ Play ball games (improves tracking)
  ✓ Reduce indoor time for eye development
  ✓ Practice sports requiring focus

💤 **Eye Hygiene:**
  ✓ Blink regularly (reduces dry eyes)
  ✓ Don't rub eyes (can cause infection)
  ✓ Wash hands before touching eyes
  ✓ Use prescribed eye drops on time

👁️ **Warning Signs (Tell a Doctor):**
  🔴 Persistent squinting or eye strain
  🔴 Difficulty seeing board at school
  🔴 Frequent headaches
  🔴 Eyes crossing/turned
  🔴 Redness or excessive tearing

📅 **Regular Checkups:**
  • Annual eye exams (minimum)
  • More frequent if prescribed glasses
  • Share screen time concerns with doctor`
