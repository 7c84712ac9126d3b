package models

type SunTimes struct {
	Date        string `json:"date" example:"2025-07-25"`
	SunRiseTime string `json:"sunRiseTime" example:"05:17"`
	SunSetTime  string `json:"sunSetTime" example:"18:41"`
}
