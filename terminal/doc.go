// Package terminal adapts a tcell screen to the game's display and input needs.
//
// Features:
//   - Raw, no-echo key capture delivered through a non-blocking poll
//   - Character-cell drawing with clear/show frame bracketing
//   - Resize resync and idempotent teardown
//   - TTY preflight check before the screen takes over
package terminal
