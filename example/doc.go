// Package example shows binlayout end to end: icmp.yaml declares the
// icmp_packet record format, and icmp_gen.go holds the accessor code
// produced from it by
//
//	binlayout gen -p example -o icmp_gen.go icmp.yaml
package example

//go:generate go run github.com/avreth/binlayout/cmd/binlayout gen -p example -o icmp_gen.go icmp.yaml
