package service

type SubscriberInterface interface {
	GetSubscribedEvents() map[string]func(interface{})
}

type EventDispatcher struct {
	Subscribers []SubscriberInterface
	Enabled     bool
}

func (d *EventDispatcher) Dispatch(event interface{}, eventName string) {
	if !d.Enabled {
		return
	}

	for _, subscriber := range d.Subscribers {
		eventMap := subscriber.GetSubscribedEvents()
		callback, ok := eventMap[eventName]
		if ok {
			callback(event)
		}
	}
}
