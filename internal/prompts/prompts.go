// Package prompts holds every sentence the assistant speaks. Keeping the
// copy in one place lets ops review the script without reading handler code.
package prompts

import "fmt"

// Greeting opens the call. A non-empty override (per-store behavior config)
// replaces the stock script.
func Greeting(storeName, storeLocation, override string) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf(
		"Thank you for calling %s in %s! This is the AI assistant, what can I fix for you today?",
		storeName, storeLocation,
	)
}

func PriceFound(amount float64) string {
	return fmt.Sprintf(
		"For that issue, the estimated cost for the repair is typically around %.2f dollars. "+
			"Our certified technicians use only top-quality parts, and our repairs come with a one-year warranty. "+
			"We can usually have that done for you same-day. Let's get you scheduled so we can take care of that quickly!",
		amount,
	)
}

func PriceNotFound() string {
	return "I see this issue all the time, we'll take great care of you. " +
		"I don't have an exact price estimate for that repair right now. " +
		"Could you please tell me the device model or the specific issue again?"
}

func PricingRestricted() string {
	return "Actually, computer and laptop repairs require an in-store diagnostic so our certified technicians can be sure of the fix. " +
		"Please visit the store or call us during business hours for assistance, and we'll take great care of you."
}

func BookingOffer() string {
	return "We can definitely take care of that for you! To ensure a smooth and quick repair, " +
		"I can send you a link to book an appointment by text right now. Should I send that over?"
}

func TransferConnecting() string {
	return "I want to make sure you get the most accurate answer and the highest quality service. " +
		"I'm going to connect you directly with one of our in-store technicians. " +
		"I'll let them know exactly what we've discussed so you don't have to repeat yourself. " +
		"Please stay on the line."
}

func TransferFailed() string {
	return "I'm sorry, our team is currently busy and unable to take the call. " +
		"Would you like me to send you a booking link instead?"
}

func SMSSent() string {
	return "I've sent the booking link to your phone. Is there anything else I can help with?"
}

func Clarification() string {
	return "Thanks, one moment please while I look into that for you."
}

func RepeatPrompt() string {
	return "I'm sorry, I didn't catch that. Could you please repeat what you said?"
}

func Busy() string {
	return "All of our assistants are helping other callers right now. Please call back in a few minutes."
}

// BookingSMSBody is the text-message body carrying the booking link.
func BookingSMSBody(bookingURL string) string {
	return fmt.Sprintf("You can book your appointment here: %s", bookingURL)
}
