package status

// CatalogEntry describes one seeded sub status together with its parent.
type CatalogEntry struct {
	Main  Name
	Sub   Name
	Label string
	Order int
	Color string
}

// MainEntry describes one seeded main status.
type MainEntry struct {
	Name  Name
	Label string
	Order int
	Color string
	Icon  string
}

// DefaultMain is the main status reference data seeded on startup.
var DefaultMain = []MainEntry{
	{Name: MainNominated, Label: "Nominated", Order: 1, Color: "#6366f1", Icon: "user-plus"},
	{Name: MainDocuments, Label: "Documents", Order: 2, Color: "#f59e0b", Icon: "file-text"},
	{Name: MainInterview, Label: "Interview", Order: 3, Color: "#0ea5e9", Icon: "users"},
	{Name: MainProcessing, Label: "Processing", Order: 4, Color: "#10b981", Icon: "briefcase"},
	{Name: MainRejected, Label: "Rejected", Order: 5, Color: "#ef4444", Icon: "x-circle"},
}

// DefaultSub is the sub status reference data seeded on startup.
var DefaultSub = []CatalogEntry{
	{Main: MainNominated, Sub: SubPendingDocuments, Label: "Pending Documents", Order: 1, Color: "#a5b4fc"},
	{Main: MainDocuments, Sub: SubVerificationInProgress, Label: "Verification In Progress", Order: 1, Color: "#fcd34d"},
	{Main: MainDocuments, Sub: SubRejectedDocuments, Label: "Documents Rejected", Order: 2, Color: "#fca5a5"},
	{Main: MainDocuments, Sub: SubDocumentsVerified, Label: "Documents Verified", Order: 3, Color: "#86efac"},
	{Main: MainInterview, Sub: SubMockInterviewAssigned, Label: "Mock Interview Assigned", Order: 1},
	{Main: MainInterview, Sub: SubMockInterviewScheduled, Label: "Mock Interview Scheduled", Order: 2},
	{Main: MainInterview, Sub: SubMockInterviewPassed, Label: "Mock Interview Passed", Order: 3, Color: "#86efac"},
	{Main: MainInterview, Sub: SubMockInterviewFailed, Label: "Mock Interview Failed", Order: 4, Color: "#fca5a5"},
	{Main: MainInterview, Sub: SubTrainingAssigned, Label: "Training Assigned", Order: 5},
	{Main: MainInterview, Sub: SubTrainingInProgress, Label: "Training In Progress", Order: 6},
	{Main: MainInterview, Sub: SubTrainingCompleted, Label: "Training Completed", Order: 7},
	{Main: MainInterview, Sub: SubReadyForReassessment, Label: "Ready For Reassessment", Order: 8},
	{Main: MainInterview, Sub: SubInterviewScheduled, Label: "Interview Scheduled", Order: 9},
	{Main: MainRejected, Sub: SubRejectedInterview, Label: "Rejected at Interview", Order: 1, Color: "#ef4444"},
	{Main: MainProcessing, Sub: SubProcessingInitiated, Label: "Processing Initiated", Order: 1},
}
