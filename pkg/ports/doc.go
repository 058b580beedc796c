/*
Package ports defines the driven ports (interfaces) of the simulator.

These interfaces decouple the machine and its collaborators from concrete
backends, so definitions can come from disk, an embedded filesystem or memory,
and analysis reports can be kept in memory, on disk or in Redis.

# Key Interfaces

  - DefinitionLoader: fetches raw machine definition documents by name.
  - ReportStore: persists analysis reports.
*/
package ports
