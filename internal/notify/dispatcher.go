package notify

import "log"

type Dispatcher struct {
	writer *Writer
	queue  chan Event
}

func NewDispatcher(writer *Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Write(ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

// Dispatch enqueues without blocking; a full queue drops the event so
// notification fan-out can never stall the request path.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}

var _ Notifier = (*Dispatcher)(nil)
