// Command structdiff is the command-line driver sketched (not specified)
// as an external interface: a cobra command tree (aws-copilot-cli,
// cue-lang) over the engine's parse/diff/format packages, with
// github.com/pkg/errors wrapping at the file-and-flag boundary (aretext)
// and github.com/google/shlex splitting an optional STRUCTDIFF_ARGS
// environment variable into extra arguments before cobra parses them
// (aretext's shell package splits $SHELL the same way).
package main
