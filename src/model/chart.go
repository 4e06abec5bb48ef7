package model

type ChartDefinition struct {
	Id     int64       `json:"id"`
	Uuid   string      `json:"uuid"`
	Key    string      `json:"key"`
	Title  string      `json:"title"`
	Config ChartConfig `json:"config"`
}

type ChartDefinitionUpdate struct {
	Title  string      `json:"title"`
	Config ChartConfig `json:"config"`
}
