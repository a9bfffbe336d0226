// Package main provides the friendnet command-line interface.
//
// The CLI loads a network from a YAML file (or uses a small demo chain of
// alice, hatter and cheshire when none is configured) and runs one
// operation against it:
//
//	friendnet path alice cheshire
//	friendnet send alice cheshire "Hello!" --encrypt
//	friendnet send alice cheshire "Hello!" --compress 0.5 --metrics
//	friendnet send alice cheshire "Hello!" --fft
//	friendnet keygen
//
// Environment variables FRIENDNET_LOG_LEVEL, FRIENDNET_PRIME_LOW,
// FRIENDNET_PRIME_HIGH and FRIENDNET_LOSSINESS override the file, and may be
// supplied through a .env file in the working directory.
package main
