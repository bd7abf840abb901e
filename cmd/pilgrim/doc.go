// Command pilgrim is the CLI for the entity catalog: it reconciles collected
// episodes into location/item attributions, reports and merges duplicate
// locations, and manages affiliate link activation.
package main
