package responses

import "time"

type DonationSummary struct {
	From           time.Time      `json:"from"`
	To             time.Time      `json:"to"`
	TotalDonations int            `json:"totalDonations"`
	TotalVolumeML  int            `json:"totalVolumeMl"`
	ByBloodType    map[string]int `json:"byBloodType"`
}

type RequestTurnaround struct {
	TotalDecided     int     `json:"totalDecided"`
	AvgDecisionHours float64 `json:"avgDecisionHours"`
}

type ReportExport struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
}
