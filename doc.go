// Package trackline provides the deterministic math behind an investment
// growth tracker: it compares hand-modeled growth projections against the
// realized value of an account, correctly accounting for deposits and
// withdrawals that are not performance.
//
// The core functionalities include:
//   - Business-Day Calendar: classifying dates as tradeable, and counting or
//     advancing business days across weekends and observed market holidays.
//   - Growth Projection: turning a scenario (rate, interval) into a milestone
//     schedule and a dense, interpolated daily value curve.
//   - Cash-Flow Composition: applying a per-business-day compounding rate plus
//     discrete cash-flow deltas to a base date series.
//   - Rate Estimation: inferring a realized, cash-flow-neutral growth rate
//     from sparse actual snapshots.
//   - Risk Analytics: variance, drawdown, volatility, Sharpe ratio, rolling
//     returns, and best/worst period attribution.
//
// Every operation is a pure function over immutable inputs: the engine keeps
// no state, performs no I/O, and yields identical outputs for identical
// inputs. Expected missing-data conditions (a tracker with a single snapshot,
// an empty cash-flow list) are reported as absence, not errors.
//
// This package serves as the foundational logic for the `tln` command-line
// tool, which owns persistence and rendering.
package trackline
