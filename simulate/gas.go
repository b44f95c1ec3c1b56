package simulate

// EstimateGas computes the deployment and storage cost estimate. It is a
// pure function of module size, the structural report, and the policy:
// identical inputs always quote identical costs.
func EstimateGas(size int, rep StructuralReport, pol Policy) GasEstimate {
	sizeKB := float64(size) / 1024.0

	sizeCost := int64(sizeKB) * pol.CostPerKB
	functionCost := int64(rep.FunctionCount) * pol.CostPerFunction
	tableCost := int64(rep.TableCount) * pol.CostPerTable
	memoryCost := int64(rep.MemoryPages) * pol.CostPerMemoryPage

	deploymentCost := pol.BaseDeploymentCost + sizeCost + functionCost + tableCost + memoryCost

	// Storage cost scales with data section entries at a tenth of the KB rate.
	storageCost := int64(rep.DataSectionEntries) * pol.CostPerKB / 10

	totalCost := deploymentCost + storageCost

	return GasEstimate{
		TotalCostStroops:      totalCost,
		TotalCostXLM:          float64(totalCost) / float64(pol.StroopsPerXLM),
		WasmSizeKB:            sizeKB,
		ComplexityFactor:      complexityFactor(rep, sizeKB),
		DeploymentCostStroops: deploymentCost,
		StorageCostStroops:    storageCost,
	}
}

// complexityFactor blends structural counts and size into a [0,1] heuristic.
// Each term is capped at 1 before weighting, so the sum stays in range for
// any input by construction.
func complexityFactor(rep StructuralReport, sizeKB float64) float64 {
	funcFactor := capped(float64(rep.FunctionCount)/100.0) * 0.3
	tableFactor := capped(float64(rep.TableCount)/10.0) * 0.2
	memoryFactor := capped(float64(rep.MemoryPages)/1024.0) * 0.2
	sizeFactor := capped(sizeKB/100.0) * 0.3

	return funcFactor + tableFactor + memoryFactor + sizeFactor
}

func capped(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
