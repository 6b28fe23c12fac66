package registry

func init() {
	Register("conway", "Conway's Life", "B3/S23")
	Register("highlife", "HighLife", "B36/S23")
	Register("seeds", "Seeds", "B2/S")
	Register("daynight", "Day & Night", "B3,6-8/S3-4,6-8")
	Register("maze", "Maze", "B3/S1-5")
	Register("lifewithoutdeath", "Life without Death", "B3/S0-8")
	Register("replicator", "Replicator", "B1,3,5,7/S1,3,5,7")
	Register("diamoeba", "Diamoeba", "B3,5-8/S5-8")
	Register("twobytwo", "2x2", "B3,6/S1-2,5")
	Register("morley", "Morley", "B3,6,8/S2,4-5")
	Register("anneal", "Anneal", "B4,6-8/S3,5-8")
}
