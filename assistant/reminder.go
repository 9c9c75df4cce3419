package assistant

import (
	"fmt"
	"strings"
)

const reminderMenu = `⏰ **Set Your Eye Care Reminders**

💡 Reminders help you remember:
  • 💧 Eye drops (2-3 times daily)
  • 👓 Screen breaks (Every 20 mins)
  • 🏃 Eye exercises (Morning & evening)
  • 📋 Eye checkups (Monthly)
  • 🍽️ Healthy meals (Throughout day)

What do you want to be reminded about?
(e.g., 'eye drops', 'break', 'exercise')`

// wantsReminder reports whether an idle message should (re)enter the wizard.
func wantsReminder(intent, lowerText string) bool {
	return intent == IntentSetReminder || strings.Contains(lowerText, "reminder")
}

// advanceReminder runs one step of the reminder wizard and returns the prompt
// for the next step. The wizard stores each answer verbatim, walks
// Idle → AwaitingType → AwaitingTime → AwaitingFrequency, then emits the
// confirmation and resets to Idle. There is no cancellation path: once
// active, the wizard consumes every message until it completes.
func advanceReminder(session *Session, userText string) string {
	switch session.ReminderStep {
	case StepIdle:
		session.ReminderStep = StepAwaitingType
		return reminderMenu

	case StepAwaitingType:
		session.ReminderData.Type = userText
		session.ReminderStep = StepAwaitingTime
		return fmt.Sprintf(`✓ Got it! You want reminders for: **%s**

⏰ What time should I remind you?
   Format: (e.g., '9:00 AM', '2:30 PM', 'morning', 'evening')`, userText)

	case StepAwaitingTime:
		session.ReminderData.Time = userText
		session.ReminderStep = StepAwaitingFrequency
		return fmt.Sprintf(`✓ Time set: **%s**

📅 How often do you need this?
   • daily (Every day)
   • weekly (Once a week)
   • custom (Specific pattern)`, userText)

	case StepAwaitingFrequency:
		session.ReminderData.Frequency = userText
		data := session.ReminderData
		session.ReminderStep = StepIdle
		return fmt.Sprintf(`✅ **Reminder Successfully Created!**

📌 Reminder Details:
   • Task: %s
   • Time: %s
   • Frequency: %s

🎉 You'll get notified to %s at %s!
Set more reminders anytime by typing 'remind me' 🔔`,
			data.Type, data.Time, data.Frequency, data.Type, data.Time)

	default:
		// Out-of-range state is treated as Idle so the contract stays total.
		session.ReminderStep = StepIdle
		return advanceReminder(session, userText)
	}
}
