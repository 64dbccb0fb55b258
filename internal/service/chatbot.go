package service

import "strings"

const defaultReply = "I'm not sure about that. Try asking about hostels, cafeterias, libraries, or directions."

type chatRule struct {
	keyword string
	reply   string
}

// Checked in order; the first keyword contained in the message wins.
var chatRules = []chatRule{
	{"hostel", "We have King's Palace (boys) and Queen's Castle (girls) hostels. Use the map to locate them."},
	{"cafeteria", "Food Court 1 (Campus Center) and Cafe Coffee Day (Near Library) are open 8AM-10PM."},
	{"library", "Central Library is open 8AM-10PM. KIMS Library is in Campus 6."},
	{"academic", "Academic blocks are in Campus 3, 7, 8, 12, 14, 15, 16, 17, and 25."},
	{"sports", "We have cricket field, indoor stadium, football stadium, and hockey stadium."},
	{"admin", "Administrative offices are in Campus 3. Visit for any official work."},
	{"hello", "Hello! I'm your KIIT campus assistant. Ask me about hostels, cafeterias, or directions."},
	{"help", "I can help you find: hostels, cafeterias, libraries, academic blocks, sports facilities."},
}

// ChatReply answers a campus question by keyword matching
func ChatReply(message string) string {
	message = strings.ToLower(message)
	for _, rule := range chatRules {
		if strings.Contains(message, rule.keyword) {
			return rule.reply
		}
	}
	return defaultReply
}
