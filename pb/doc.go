// Package pb holds the messages exchanged with the world actor.
// goakt only carries protobuf messages, hence the generated types.
package pb

//go:generate protoc -I .. --go_out=.. --go_opt=paths=source_relative ../pb/flock.proto
