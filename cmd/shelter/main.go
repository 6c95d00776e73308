// Command shelter cleans a shelter roster and renders the daily report.
package main

func main() {
	Execute()
}
