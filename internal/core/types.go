package core

const (
	CalcName       = "CalcBot"
	CalcVersion    = "0.1.0"
	DefaultRuntime = ".calcbot"
)

type ActivityType string

// Activity kinds, named after the Bot Framework activity types.
const (
	ActivityMessage            ActivityType = "message"
	ActivityConversationUpdate ActivityType = "conversationUpdate"
	ActivityMessageUpdate      ActivityType = "messageUpdate"
	ActivityTyping             ActivityType = "typing"
	ActivityEndOfConversation  ActivityType = "endOfConversation"
)

// Activity is the one event delivered to the bot for a turn.
type Activity struct {
	Type ActivityType
	Text string
}

func NewMessage(text string) Activity {
	return Activity{Type: ActivityMessage, Text: text}
}

func (a Activity) IsMessage() bool {
	return a.Type == ActivityMessage
}
