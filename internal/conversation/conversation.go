// Package conversation holds the doctor-messaging data. It is a fixed
// lookup with no derived logic; only the unread total feeds the
// notification badge.
package conversation

// Thread is one doctor conversation as shown in the inbox list.
type Thread struct {
	ID        string `json:"id"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Message   string `json:"message"`
	Time      string `json:"time"`
	Unread    int    `json:"unread"`
	Online    bool   `json:"online"`
}

// Message is one chat bubble within a thread.
type Message struct {
	ID     string `json:"id"`
	Sender string `json:"sender"` // "doctor" or "you"
	Text   string `json:"text"`
	Time   string `json:"time"`
}

var threads = []Thread{
	{
		ID:        "thread-neil",
		Doctor:    "Dr. Neil",
		Specialty: "Rheumatology",
		Message:   "How are your joints feeling after the new medication schedule?",
		Time:      "9:18",
		Unread:    2,
		Online:    true,
	},
	{
		ID:        "thread-khan",
		Doctor:    "Dr. Khan",
		Specialty: "Family Medicine",
		Message:   "Please upload your latest blood pressure readings before Friday.",
		Time:      "Yesterday",
		Unread:    1,
	},
	{
		ID:        "thread-choi",
		Doctor:    "Dr. Choi",
		Specialty: "Cardiology",
		Message:   "ECG results look stable. Keep your current routine.",
		Time:      "Mon",
	},
}

var messages = map[string][]Message{
	"thread-neil": {
		{ID: "neil-1", Sender: "doctor", Text: "How are your joints feeling today?", Time: "09:18"},
		{ID: "neil-2", Sender: "you", Text: "Much better than last week, less morning stiffness.", Time: "09:21"},
		{ID: "neil-3", Sender: "doctor", Text: "Great. Keep the current dose and log symptoms for 3 days.", Time: "09:24"},
	},
	"thread-khan": {
		{ID: "khan-1", Sender: "doctor", Text: "Please upload your latest blood pressure readings before Friday.", Time: "Yesterday"},
		{ID: "khan-2", Sender: "you", Text: "Will do. I will send today's and tomorrow's values.", Time: "Yesterday"},
	},
	"thread-choi": {
		{ID: "choi-1", Sender: "doctor", Text: "ECG results look stable. Keep your current routine.", Time: "Mon"},
		{ID: "choi-2", Sender: "you", Text: "Thanks doctor, I will continue the same schedule.", Time: "Mon"},
	},
}

// Threads returns the inbox list.
func Threads() []Thread {
	out := make([]Thread, len(threads))
	copy(out, threads)
	return out
}

// Messages returns the chat log for a thread, nil for unknown ids.
func Messages(threadID string) []Message {
	msgs, ok := messages[threadID]
	if !ok {
		return nil
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// UnreadTotal sums unread counts across all threads.
func UnreadTotal() int {
	total := 0
	for _, t := range threads {
		total += t.Unread
	}
	return total
}
