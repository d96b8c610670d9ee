package backend

import "math/rand"

// Dict is the pool of secrets not played yet.
type Dict struct {
	secrets []string
	rng     *rand.Rand
}

// NewDict creates a pool holding a copy of secrets.
func NewDict(secrets []string, rng *rand.Rand) *Dict {
	pool := make([]string, len(secrets))
	copy(pool, secrets)
	return &Dict{secrets: pool, rng: rng}
}

// Draw removes a random secret from the pool.
// It returns false if the pool is empty.
func (d *Dict) Draw() (string, bool) {
	if len(d.secrets) == 0 {
		return "", false
	}
	i := d.rng.Intn(len(d.secrets))
	s := d.secrets[i]
	last := len(d.secrets) - 1
	d.secrets[i] = d.secrets[last]
	d.secrets = d.secrets[:last]
	return s, true
}

// Add puts a secret back into the pool.
func (d *Dict) Add(secret string) {
	d.secrets = append(d.secrets, secret)
}

// Len returns the number of secrets left.
func (d *Dict) Len() int { return len(d.secrets) }

// IsEmpty reports whether no secret is left.
func (d *Dict) IsEmpty() bool { return len(d.secrets) == 0 }
