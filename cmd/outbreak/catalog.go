package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/precinct-outbreak/internal/data"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List weapons, perks and enemy types",
	Long:  `Shows the weapons, vending machine perks and zombie breeds found in the precinct.`,
	Run:   runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) {
	fmt.Println("Weapons:")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-6s  %-5s  %-4s  %s\n", "Name", "Class", "Dmg", "RPS", "Mag", "Price")
	fmt.Printf("  %-10s  %-8s  %-6s  %-5s  %-4s  %s\n", "----", "-----", "---", "---", "---", "-----")
	for _, w := range data.Weapons() {
		fmt.Printf("  %-10s  %-8s  %-6.0f  %-5.1f  %-4d  $%d\n",
			w.Name, w.Class, w.Damage, w.FireRate, w.MagazineSize, w.Price)
	}

	fmt.Println()
	fmt.Println("Vending machine perks:")
	fmt.Println()
	for _, p := range data.Perks() {
		fmt.Printf("  %-12s  %s\n", p.Name, p.Description)
	}

	fmt.Println()
	fmt.Println("Shop items:")
	fmt.Println()
	for _, item := range data.ShopItems() {
		fmt.Printf("  %-12s  $%-5d %s\n", item.Name, item.Price, item.Description)
	}

	fmt.Println()
	fmt.Println("Zombie breeds:")
	fmt.Println()
	fmt.Printf("  %-8s  %-7s  %-6s  %-6s  %s\n", "Type", "Health", "Dmg", "Speed", "Points")
	fmt.Printf("  %-8s  %-7s  %-6s  %-6s  %s\n", "----", "------", "---", "-----", "------")
	for _, t := range []data.ZombieType{data.ZombieWalker, data.ZombieRunner, data.ZombieBrute, data.ZombieCrawler} {
		s := data.StatsFor(t)
		fmt.Printf("  %-8s  %-7.0f  %-6.0f  %-6.0f  %d\n", t, s.Health, s.Damage, s.Speed, s.Points)
	}

	fmt.Println()
	fmt.Println("Run 'outbreak play' to put them to use.")
}
