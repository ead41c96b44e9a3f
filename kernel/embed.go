package main

import _ "embed"

// Build-time embedding of the sample user programs. Grounded on
// original_source/embedded_user_programs.h's EmbeddedFile{name, binary,
// binary_size, source, source_size} table, reimplemented with Go's native
// go:embed instead of the bespoke C-array generator the original build
// used, since go:embed is strictly simpler and does the same job at
// compile time.

type EmbeddedProgram struct {
	Name   string
	Source []byte
	Binary []byte
}

//go:embed userprog/hello.S
var helloSource []byte

//go:embed userprog/hello.bin
var helloBinary []byte

//go:embed userprog/yieldloop.S
var yieldloopSource []byte

//go:embed userprog/yieldloop.bin
var yieldloopBinary []byte

//go:embed userprog/unknown.S
var unknownSource []byte

//go:embed userprog/unknown.bin
var unknownBinary []byte

//go:embed userprog/producer.S
var producerSource []byte

//go:embed userprog/producer.bin
var producerBinary []byte

//go:embed userprog/consumer.S
var consumerSource []byte

//go:embed userprog/consumer.bin
var consumerBinary []byte

var embeddedPrograms = []EmbeddedProgram{
	{"hello", helloSource, helloBinary},
	{"yieldloop", yieldloopSource, yieldloopBinary},
	{"unknown", unknownSource, unknownBinary},
	{"producer", producerSource, producerBinary},
	{"consumer", consumerSource, consumerBinary},
}

func findEmbeddedProgram(name string) *EmbeddedProgram {
	for i := range embeddedPrograms {
		if embeddedPrograms[i].Name == name {
			return &embeddedPrograms[i]
		}
	}
	return nil
}
