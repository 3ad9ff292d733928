// Package qrng fills caller buffers with symbolic quantum random
// draws: each slot is a simulated binary measurement collapsing to the
// range's lower or upper bound, recorded as a QRNG_BIT event against a
// synthetic qubit identity. Determinism is available through seeding
// for tests.
package qrng
