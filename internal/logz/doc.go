// Package logz builds the *zap.Logger shared by the scheduler's §7
// error-propagation path and cmd/ecsphysbench, the same level-switched
// construction arx-os-arxos's gateway.initLogger uses.
package logz
