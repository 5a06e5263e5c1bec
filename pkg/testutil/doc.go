// Package testutil provides fixtures for testing edna components.
//
// Key components:
//   - TestEnvironment: isolated data, config and state directories with a
//     ready-made templates directory and registry
//   - TemplateFixture: declarative template tree builder
//   - FakeRunner: scripts.Runner stand-in that records invocations
//
// All fixtures live under t.TempDir() and need no cleanup.
package testutil
