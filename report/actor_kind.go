package report

// ActorKind is the role of a single benchmark actor.
type ActorKind string

const (
	ActorKindProducer          ActorKind = "producer"
	ActorKindConsumer          ActorKind = "consumer"
	ActorKindProducingConsumer ActorKind = "producing_consumer"
)

var actorKindNames = map[ActorKind]string{
	ActorKindProducer:          "Producer",
	ActorKindConsumer:          "Consumer",
	ActorKindProducingConsumer: "Producing Consumer",
}

func (k ActorKind) IsValid() bool {
	_, ok := actorKindNames[k]
	return ok
}

func (k ActorKind) String() string {
	if name, ok := actorKindNames[k]; ok {
		return name
	}
	return string(k)
}

// sends is true for every role except a pure consumer.
func (k ActorKind) sends() bool { return k != ActorKindConsumer }

// receives is true for every role except a pure producer.
func (k ActorKind) receives() bool { return k != ActorKindProducer }
