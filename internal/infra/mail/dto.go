package mail

type LeadAlertData struct {
	LeadID        string
	Email         string
	Phone         string
	InitialScore  string
	RerankedScore string
	ScoreTag      string
	CapturedAt    string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
