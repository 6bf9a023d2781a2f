// poolctl inspects and benchmarks fixed-size pool allocators.
package main

func main() {
	execute()
}
