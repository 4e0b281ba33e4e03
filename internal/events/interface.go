package events

// Publisher receives change notifications from the store.
type Publisher interface {
	// Publish delivers an event. It must not block the writer.
	Publish(event Event) error
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)
