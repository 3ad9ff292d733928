// Package qweave is a symbolic quantum gate and topology engine: one
// complex amplitude per qubit, a full elementary gate catalog, and
// sacred-geometry entanglement patterns, correct under both native
// floating point and Q32.32 fixed-point arithmetic.
//
// 🚀 What is qweave?
//
//	A deterministic, dependency-light engine that brings together:
//		• Dual arithmetic: one gate catalog, two interchangeable backends
//		• Fixed-point kernel: Q32.32 multiply, truncated Taylor sin/cos
//		• Gate catalog: single, pair and triple qubit entries
//		• Topology generators: Flower of Life, Metatron's Cube, E8,
//		  triangular/hexagonal lattices and their tessellations
//		• Geometric lattices: FCC, HCP, D4, B5 and projected E8/E5
//		  by epsilon proximity over 3–5D coordinates
//		• Boundary transfer: MessagePack batches in and out
//		• Symbolic QRNG: seeded binary-collapse draws
//
// ✨ Why choose qweave?
//
//   - Deterministic – fixed edge orders, seeded randomness, no globals
//   - Backend-honest – the catalog never branches on representation
//   - Observable – every gate call emits one symbolic record
//   - Extensible – inject your own Recorder, scalar backend, or codec
//
// Under the hood, everything is organized under flat subpackages:
//
//	fixedpoint/ — Q32.32 values, complex pairs, trig kernel
//	amplitude/  — the dual algebra (Float/Fixed Ops and ScalarOps)
//	qubit/      — the qubit and positioned-qubit data model
//	event/      — symbolic record sinks (Nop, Capture, zerolog Sink)
//	gates/      — the elementary gate catalog
//	topology/   — pattern and proximity generators
//	engine/     — the applicator walking topologies over live qubits
//	boundary/   — MessagePack batch transfer and representation moves
//	qrng/       — symbolic random draws
//
// Quick ASCII example:
//
//	    1───2
//	   ╱ ╲ ╱ ╲
//	  6───0───3
//	   ╲ ╱ ╲ ╱
//	    5───4
//
//	the 7-slot hex-rhombi unit: a prepared outer ring starred to an
//	unprepared center.
//
// Dive into the package docs for guarantees, edge orders, and the
// fixed-point accuracy contract.
//
//	go get github.com/qweave/qweave
package qweave
