package cmd

import "fmt"

const hawkBanner = `
|\     /|(  ____ \(  ___  )(  __  \ (  ____ \(  ____ )|\     /|(  ___  )|\     /|| \    /\
| )   ( || (    \/| (   ) || (  \  )| (    \/| (    )|| )   ( || (   ) || )   ( ||  \  / /
| (___) || (__    | (___) || |   ) || (__    | (____)|| (___) || (___) || | _ | ||  (_/ /
|  ___  ||  __)   |  ___  || |   | ||  __)   |     __)|  ___  ||  ___  || |( )| ||   _ (
| (   ) || (      | (   ) || |   ) || (      | (\ (   | (   ) || (   ) || || || ||  ( \ \
| )   ( || (____/\| )   ( || (__/  )| (____/\| ) \ \__| )   ( || )   ( || () () ||  /  \ \
|/     \|(_______/|/     \|(______/ (_______/|/   \__/|/     \||/     \|(_______)|_/    \/`

func printBanner(userAgent string) {
	fmt.Println(colorInfo(hawkBanner))
	fmt.Println(colorWarn("Security Header Analysis Tool"))
	fmt.Printf("%s %s\n", colorWarn("Version:"), Version)
	fmt.Printf("%s %s\n", colorWarn("User-Agent:"), userAgent)
	fmt.Println()
}
