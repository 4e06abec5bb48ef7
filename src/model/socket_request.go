package model

const StreamMethodSubscribe = "SUBSCRIBE"
const StreamMethodUnsubscribe = "UNSUBSCRIBE"

type SocketStreamsRequest struct {
	Id     int64    `json:"id"`
	Method string   `json:"method"`
	Params []string `json:"params"`
}

func (s SocketStreamsRequest) IsSubscribe() bool {
	return s.Method == StreamMethodSubscribe
}

func (s SocketStreamsRequest) IsUnsubscribe() bool {
	return s.Method == StreamMethodUnsubscribe
}

type PointEvent struct {
	Chart  string      `json:"chart"`
	Points []DataPoint `json:"points"`
}

type GeometryEvent struct {
	Chart    string   `json:"chart"`
	Geometry Geometry `json:"geometry"`
}

type StreamError struct {
	Code    int64  `json:"code"`
	Message string `json:"msg"`
}
