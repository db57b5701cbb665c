package simulation

import (
	"github.com/lao-tseu-is-alive/go-robot-flock/pb"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-robot-flock/pkg/geometry"
)

// VectorToProto converts a vector into its Protobuf "Envelope"
func VectorToProto(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

// VectorFromProto is nil safe: a missing vector is the zero vector.
func VectorFromProto(p *pb.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{X: p.GetX(), Y: p.GetY()}
}

// AgentToProto converts the committed state of a robot for the wire.
func AgentToProto(a behavior.Agent) *pb.AgentState {
	return &pb.AgentState{
		Id:       a.ID,
		Position: VectorToProto(a.Position),
		Heading:  VectorToProto(a.Heading),
	}
}

// AgentFromProto converts incoming messages back to Agents
func AgentFromProto(p *pb.AgentState) behavior.Agent {
	return behavior.Agent{
		ID:       p.GetId(),
		Position: VectorFromProto(p.GetPosition()),
		Heading:  VectorFromProto(p.GetHeading()),
	}
}

func WeightsToProto(w flock.Weights) *pb.Weights {
	return &pb.Weights{
		Previous:   w.Previous,
		Separation: w.Separation,
		Alignment:  w.Alignment,
		Cohesion:   w.Cohesion,
	}
}

func WeightsFromProto(p *pb.Weights) flock.Weights {
	return flock.Weights{
		Previous:   p.GetPrevious(),
		Separation: p.GetSeparation(),
		Alignment:  p.GetAlignment(),
		Cohesion:   p.GetCohesion(),
	}
}

func RadiiToProto(r flock.Radii) *pb.Radii {
	return &pb.Radii{
		Separation: r.Separation,
		Alignment:  r.Alignment,
		Cohesion:   r.Cohesion,
	}
}

func RadiiFromProto(p *pb.Radii) flock.Radii {
	return flock.Radii{
		Separation: p.GetSeparation(),
		Alignment:  p.GetAlignment(),
		Cohesion:   p.GetCohesion(),
	}
}

// UpdateConfigFor builds the message that replaces the whole tuning with cfg.
func UpdateConfigFor(cfg flock.Config) *pb.UpdateConfig {
	return &pb.UpdateConfig{
		Weights: WeightsToProto(cfg.Weights),
		Radii:   RadiiToProto(cfg.Radii),
	}
}

// SnapshotAgents converts the agents of a snapshot, in population order.
func SnapshotAgents(s *pb.WorldSnapshot) []behavior.Agent {
	agents := make([]behavior.Agent, 0, len(s.GetAgents()))
	for _, p := range s.GetAgents() {
		agents = append(agents, AgentFromProto(p))
	}
	return agents
}
