package intent

// category is one entry in the fixed intent catalog. Table order is part
// of the observable contract: score ties keep the first entry.
type category struct {
	label    string
	priority float64
	keywords []string
}

// Intent labels.
const (
	LabelEscalation  = "Escalation Request"
	LabelBilling     = "Billing Inquiry"
	LabelTechnical   = "Technical Support"
	LabelAccount     = "Account Management"
	LabelProductInfo = "Product Information"
	LabelGeneral     = "General Inquiry"
)

var categories = []category{
	{
		label:    LabelEscalation,
		priority: 3,
		keywords: []string{"supervisor", "manager", "escalate", "complaint", "speak to someone", "unacceptable", "had enough"},
	},
	{
		label:    LabelBilling,
		priority: 2,
		keywords: []string{"bill", "billing", "charge", "charged", "invoice", "payment", "fee", "refund", "overcharged", "price increase"},
	},
	{
		label:    LabelTechnical,
		priority: 2,
		keywords: []string{"error", "not working", "broken", "crash", "bug", "login", "password", "reset", "install", "configure", "troubleshoot"},
	},
	{
		label:    LabelAccount,
		priority: 1,
		keywords: []string{"account", "update", "profile", "settings", "upgrade", "downgrade", "cancel", "subscription", "renew"},
	},
	{
		label:    LabelProductInfo,
		priority: 1,
		keywords: []string{"how do i", "how does", "what is", "feature", "plan", "pricing", "compare", "difference", "available"},
	},
	{
		label:    LabelGeneral,
		priority: 0,
		keywords: []string{"help", "question", "information", "hours", "contact", "support"},
	},
}

// referentialWords mark a message as a follow-up to the prior topic.
var referentialWords = []string{"that", "it", "this", "also", "regarding"}

// topicEntry maps product-area keywords to the display topic.
type topicEntry struct {
	topic    string
	keywords []string
}

// Product-area topics, scanned in order over the message and history;
// the first match wins.
var topics = []topicEntry{
	{"Call Routing", []string{"routing", "route calls", "call flow", "transfer rules"}},
	{"Queue Management", []string{"queue", "hold time", "wait time", "callback"}},
	{"IVR Setup", []string{"ivr", "voice menu", "phone tree", "auto attendant"}},
	{"Agent Desktop", []string{"agent desktop", "workspace", "softphone", "headset"}},
	{"Analytics Dashboard", []string{"dashboard", "report", "analytics", "metrics"}},
	{"Integrations", []string{"integration", "crm", "salesforce", "api", "webhook"}},
	{"Billing & Plans", []string{"billing", "invoice", "plan", "pricing", "subscription"}},
	{"Mobile App", []string{"mobile", "app", "ios", "android"}},
}
