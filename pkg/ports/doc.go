/*
Package ports defines the driven ports (interfaces) for the simulation core.

These interfaces decouple the walk/trials pipeline from external
implementations, allowing it to work with different randomness sources,
result stores, and chart sinks.

# Key Interfaces

  - CoinSource: Produces one of two equally likely outcomes per flip.
  - ResultStore: Persists named experiment summaries (e.g., memory or Redis).
  - ChartRenderer: Consumes a FrequencyTable and renders it somewhere.
*/
package ports
