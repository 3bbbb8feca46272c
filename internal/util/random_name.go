package util

import (
	"fmt"

	"fourseatpoker/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand",
	"Ultimate", "Prime", "Alpha", "Growling", "Sneaky", "Patient", "Reckless",
	"Bluffing", "Stoic", "Lucky",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe",
	"Antelope", "Lion", "Tiger", "Bear", "Muskrat", "Otter", "Dolphin", "Porcupine",
	"Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk", "Eagle", "Wolf", "Fox",
	"Armadillo", "Rhino", "Reindeer", "Deer", "Panda",
}

// GetRandomName returns a random name by combining an adjective with an animal.
// Used for the CPU seats when no explicit names are configured.
func GetRandomName(g rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[g.Intn(len(adjectives))], animals[g.Intn(len(animals))])
}
