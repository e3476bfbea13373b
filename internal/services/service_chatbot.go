package services

import "strings"

// chatRule maps trigger keywords to a canned reply. Rules are scanned in
// order and the first match wins.
type chatRule struct {
	Topic    string
	Keywords []string
	Reply    string
}

var chatRules = []chatRule{
	{
		Topic:    "greeting",
		Keywords: []string{"hello", "hi", "hey", "good morning", "good evening"},
		Reply:    "Hello! I'm the ClubHub assistant. Ask me about events, membership, payments or how to contact the committee.",
	},
	{
		Topic:    "events",
		Keywords: []string{"event", "activity", "workshop", "when", "upcoming"},
		Reply:    "You can browse all upcoming events on the Events page. Members can register directly from an event's detail view.",
	},
	{
		Topic:    "membership",
		Keywords: []string{"member", "join", "signup", "sign up", "register account"},
		Reply:    "To become a member, sign up with your student email and verify it with the code we send you. Membership is free!",
	},
	{
		Topic:    "payment",
		Keywords: []string{"payment", "pay", "fee", "receipt", "refund"},
		Reply:    "Paid events require a payment receipt upload during registration. An admin verifies it, after which you can download your official receipt as a PDF.",
	},
	{
		Topic:    "contact",
		Keywords: []string{"contact", "email", "committee", "hod", "help"},
		Reply:    "You can find the committee and HOD directory on the About page, or email us at club@clubhub.example.com.",
	},
}

const chatFallback = "Sorry, I didn't catch that. Try asking about events, membership, payments or contacts."

// ChatReply answers a message via keyword matching; the returned topic is
// "fallback" when nothing matched.
func ChatReply(message string) (reply, topic string) {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range chatRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				return rule.Reply, rule.Topic
			}
		}
	}
	return chatFallback, "fallback"
}
