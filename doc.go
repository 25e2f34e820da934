/*
Package datapath simulates a minimal synchronous digital computer data path:
edge triggered flip flops, registers, a program counter, a 4 bits ALU and a
byte addressable memory, all driven by an explicit clock signal.

The clock is a plain boolean supplied by the caller on every call. Stateful
components remember the last clock level they have seen and only change state
on a rising edge, that is when the clock goes from false to true between two
consecutive calls. Combinational logic (see package hwlib) is re-evaluated on
every call, but only flip flops remember.

Every stateful component keeps its own edge detector, so callers must drive
all the components of a simulated system with the same clock level within a
given step. Machine does this for a program counter, an ALU and a shared
memory.

Nothing in this package is safe for concurrent use.

*/
package datapath
