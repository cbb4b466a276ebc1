package accounts

import "github.com/cleared-dev/dre/internal/model"

// DefaultChart returns the DRE chart of accounts. Rows are listed parents
// first; the order is the order the report prints them in.
func DefaultChart() []model.AccountNode {
	return []model.AccountNode{
		{ID: model.IDGrossRevenue, Name: model.AccountGrossRevenue, Level: 1, Editable: true},

		{ID: model.IDDeductions, Name: "Deduções", Level: 1, Formula: model.FormulaSum, Expandable: true},
		{ID: "impostos-vendas", Name: "Impostos sobre Vendas", Level: 2, Parent: model.IDDeductions, Formula: model.FormulaSum, Expandable: true},
		{Name: "ICMS", Level: 3, Parent: "impostos-vendas", Editable: true},
		{Name: "PIS", Level: 3, Parent: "impostos-vendas", Editable: true},
		{Name: "COFINS", Level: 3, Parent: "impostos-vendas", Editable: true},
		{Name: "ISS", Level: 3, Parent: "impostos-vendas", Editable: true},
		{Name: "Simples Nacional", Level: 3, Parent: "Impostos sobre Vendas", Editable: true},
		{Name: "Devoluções de Vendas", Level: 2, Parent: model.IDDeductions, Editable: true},
		{Name: "Descontos Incondicionais", Level: 2, Parent: model.IDDeductions, Editable: true},

		{ID: model.IDNetRevenue, Name: "Receita Líquida", Level: 1, Formula: model.FormulaNetRevenue},

		{ID: model.IDCostOfGoods, Name: model.AccountCostOfGoods, Level: 1, Editable: true},

		{ID: model.IDGrossProfit, Name: "Lucro Bruto", Level: 1, Formula: model.FormulaGrossProfit},

		{ID: model.IDOperatingExpenses, Name: "Despesas Operacionais", Level: 1, Formula: model.FormulaSum, Expandable: true},

		{ID: "despesas-pessoal", Name: "Despesas com Pessoal", Level: 2, Parent: model.IDOperatingExpenses, Formula: model.FormulaSum, Expandable: true},
		{Name: "Salários", Level: 3, Parent: "despesas-pessoal", Editable: true},
		{Name: "Pró-labore", Level: 3, Parent: "despesas-pessoal", Editable: true},
		{Name: "Encargos Sociais", Level: 3, Parent: "despesas-pessoal", Editable: true},
		{Name: "Férias e 13º Salário", Level: 3, Parent: "despesas-pessoal", Editable: true},
		{Name: "Vale Transporte", Level: 3, Parent: "despesas-pessoal", Editable: true},
		{Name: "Vale Refeição", Level: 3, Parent: "despesas-pessoal", Editable: true},
		{Name: "Plano de Saúde", Level: 3, Parent: "despesas-pessoal", Editable: true},
		{Name: "Rescisões", Level: 3, Parent: "Despesas com Pessoal", Editable: true},

		{ID: "despesas-ocupacao", Name: "Despesas de Ocupação", Level: 2, Parent: model.IDOperatingExpenses, Formula: model.FormulaSum, Expandable: true},
		{Name: "Aluguel", Level: 3, Parent: "despesas-ocupacao", Editable: true},
		{Name: "Condomínio", Level: 3, Parent: "despesas-ocupacao", Editable: true},
		{Name: "IPTU", Level: 3, Parent: "despesas-ocupacao", Editable: true},
		{Name: "Energia Elétrica", Level: 3, Parent: "despesas-ocupacao", Editable: true},
		{Name: "Água e Esgoto", Level: 3, Parent: "despesas-ocupacao", Editable: true},
		{Name: "Segurança e Vigilância", Level: 3, Parent: "despesas-ocupacao", Editable: true},

		{ID: "despesas-administrativas", Name: "Despesas Administrativas", Level: 2, Parent: model.IDOperatingExpenses, Formula: model.FormulaSum, Expandable: true},
		{Name: "Material de Escritório", Level: 3, Parent: "despesas-administrativas", Editable: true},
		{Name: "Telefone e Internet", Level: 3, Parent: "despesas-administrativas", Editable: true},
		{Name: "Sistemas e Software", Level: 3, Parent: "despesas-administrativas", Editable: true},
		{Name: "Honorários Contábeis", Level: 3, Parent: "despesas-administrativas", Editable: true},
		{Name: "Honorários Advocatícios", Level: 3, Parent: "despesas-administrativas", Editable: true},
		{Name: "Despesas com Viagens", Level: 3, Parent: "despesas-administrativas", Editable: true},
		{Name: "Taxas e Licenças", Level: 3, Parent: "Despesas Administrativas", Editable: true},

		{ID: "despesas-comerciais", Name: "Despesas Comerciais", Level: 2, Parent: model.IDOperatingExpenses, Formula: model.FormulaSum, Expandable: true},
		{Name: "Marketing e Publicidade", Level: 3, Parent: "despesas-comerciais", Editable: true},
		{Name: "Comissões sobre Vendas", Level: 3, Parent: "despesas-comerciais", Editable: true},
		{Name: "Fretes e Entregas", Level: 3, Parent: "despesas-comerciais", Editable: true},
		{Name: "Taxas de Cartão", Level: 3, Parent: "despesas-comerciais", Editable: true},
		{Name: "Embalagens", Level: 3, Parent: "despesas-comerciais", Editable: true},

		{ID: "despesas-manutencao", Name: "Despesas de Manutenção", Level: 2, Parent: model.IDOperatingExpenses, Formula: model.FormulaSum, Expandable: true},
		{Name: "Manutenção Predial", Level: 3, Parent: "despesas-manutencao", Editable: true},
		{Name: "Manutenção de Equipamentos", Level: 3, Parent: "despesas-manutencao", Editable: true},
		{Name: "Limpeza e Conservação", Level: 3, Parent: "despesas-manutencao", Editable: true},
		{Name: "Uniformes e EPIs", Level: 3, Parent: "despesas-manutencao", Editable: true},

		{ID: model.IDEBITDA, Name: "EBITDA", Level: 1, Formula: model.FormulaEBITDA},

		{ID: model.IDNonOperatingExpenses, Name: "Despesas Não Operacionais", Level: 1, Formula: model.FormulaSum, Expandable: true},
		{ID: "despesas-financeiras", Name: "Despesas Financeiras", Level: 2, Parent: model.IDNonOperatingExpenses, Formula: model.FormulaSum, Expandable: true},
		{Name: "Juros e Multas", Level: 3, Parent: "despesas-financeiras", Editable: true},
		{Name: "Tarifas Bancárias", Level: 3, Parent: "despesas-financeiras", Editable: true},
		{Name: "IOF", Level: 3, Parent: "despesas-financeiras", Editable: true},
		{Name: "Juros de Empréstimos", Level: 3, Parent: "despesas-financeiras", Editable: true},
		{Name: "Amortização de Empréstimos", Level: 3, Parent: "despesas-financeiras", Editable: true},
		{Name: "Parcelamentos de Impostos", Level: 3, Parent: "despesas-financeiras", Editable: true},
		{Name: "Depreciação", Level: 2, Parent: model.IDNonOperatingExpenses, Editable: true},
		{Name: "Investimentos", Level: 2, Parent: model.IDNonOperatingExpenses, Editable: true},
		{Name: "IRPJ", Level: 2, Parent: "Despesas Não Operacionais", Editable: true},
		{Name: "CSLL", Level: 2, Parent: "Despesas Não Operacionais", Editable: true},
		{Name: "Distribuição de Lucros", Level: 2, Parent: model.IDNonOperatingExpenses, Editable: true},

		{ID: model.IDNetProfit, Name: "Lucro Líquido", Level: 1, Formula: model.FormulaNetProfit},
	}
}

// DefaultNonOperationalAccounts lists the ledger accounts kept out of the
// operating-expense KPI and charged against net profit instead.
func DefaultNonOperationalAccounts() []string {
	return []string{
		"Juros e Multas",
		"Tarifas Bancárias",
		"IOF",
		"Juros de Empréstimos",
		"Amortização de Empréstimos",
		"Parcelamentos de Impostos",
		"Depreciação",
		"Investimentos",
		"IRPJ",
		"CSLL",
		"Distribuição de Lucros",
	}
}

// DefaultFinancingAccounts lists the accounts that make up net debt.
func DefaultFinancingAccounts() []string {
	return []string{
		"Juros de Empréstimos",
		"Amortização de Empréstimos",
		"Parcelamentos de Impostos",
	}
}
