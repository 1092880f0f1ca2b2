package stocklist

// Listings is the curated autocomplete universe: large caps across US,
// India and global exchanges.
var Listings = []Option{
	// US tech
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "META", Name: "Meta Platforms Inc."},
	{Symbol: "TSLA", Name: "Tesla Inc."},
	{Symbol: "AVGO", Name: "Broadcom Inc."},
	{Symbol: "ORCL", Name: "Oracle Corporation"},
	{Symbol: "CRM", Name: "Salesforce Inc."},
	{Symbol: "AMD", Name: "Advanced Micro Devices"},
	{Symbol: "NFLX", Name: "Netflix Inc."},
	{Symbol: "INTC", Name: "Intel Corporation"},
	{Symbol: "IBM", Name: "International Business Machines"},
	{Symbol: "UBER", Name: "Uber Technologies"},
	{Symbol: "ABNB", Name: "Airbnb Inc."},
	{Symbol: "PLTR", Name: "Palantir Technologies"},
	{Symbol: "COIN", Name: "Coinbase Global"},

	// US finance
	{Symbol: "JPM", Name: "JPMorgan Chase & Co."},
	{Symbol: "BAC", Name: "Bank of America Corp"},
	{Symbol: "V", Name: "Visa Inc."},
	{Symbol: "MA", Name: "Mastercard Inc."},
	{Symbol: "BRK.B", Name: "Berkshire Hathaway"},
	{Symbol: "GS", Name: "Goldman Sachs"},
	{Symbol: "MS", Name: "Morgan Stanley"},
	{Symbol: "BLK", Name: "BlackRock Inc."},

	// Consumer and retail
	{Symbol: "WMT", Name: "Walmart Inc."},
	{Symbol: "COST", Name: "Costco Wholesale"},
	{Symbol: "PG", Name: "Procter & Gamble"},
	{Symbol: "KO", Name: "Coca-Cola Company"},
	{Symbol: "PEP", Name: "PepsiCo Inc."},
	{Symbol: "MCD", Name: "McDonald's Corp"},
	{Symbol: "NKE", Name: "Nike Inc."},
	{Symbol: "DIS", Name: "Walt Disney Company"},
	{Symbol: "SBUX", Name: "Starbucks Corp"},
	{Symbol: "TGT", Name: "Target Corporation"},

	// Healthcare
	{Symbol: "JNJ", Name: "Johnson & Johnson"},
	{Symbol: "LLY", Name: "Eli Lilly and Company"},
	{Symbol: "UNH", Name: "UnitedHealth Group"},
	{Symbol: "PFE", Name: "Pfizer Inc."},
	{Symbol: "MRK", Name: "Merck & Co."},

	// India (NSE/BSE)
	{Symbol: "RELIANCE", Name: "Reliance Industries"},
	{Symbol: "TCS", Name: "Tata Consultancy Services"},
	{Symbol: "HDFCBANK", Name: "HDFC Bank"},
	{Symbol: "INFY", Name: "Infosys Ltd"},
	{Symbol: "ICICIBANK", Name: "ICICI Bank"},
	{Symbol: "BHARTIARTL", Name: "Bharti Airtel"},
	{Symbol: "SBIN", Name: "State Bank of India"},
	{Symbol: "ITC", Name: "ITC Limited"},
	{Symbol: "LICI", Name: "LIC India"},
	{Symbol: "HINDUNILVR", Name: "Hindustan Unilever"},
	{Symbol: "LT", Name: "Larsen & Toubro"},
	{Symbol: "BAJFINANCE", Name: "Bajaj Finance"},
	{Symbol: "MARUTI", Name: "Maruti Suzuki"},
	{Symbol: "TATAMOTORS", Name: "Tata Motors"},
	{Symbol: "ASIANPAINT", Name: "Asian Paints"},
	{Symbol: "AXISBANK", Name: "Axis Bank"},
	{Symbol: "TITAN", Name: "Titan Company"},
	{Symbol: "SUNPHARMA", Name: "Sun Pharma"},
	{Symbol: "ZOMATO", Name: "Zomato Ltd"},
	{Symbol: "PAYTM", Name: "Paytm (One97)"},

	// Global
	{Symbol: "TSM", Name: "Taiwan Semiconductor"},
	{Symbol: "ASML", Name: "ASML Holding"},
	{Symbol: "BABA", Name: "Alibaba Group"},
	{Symbol: "TM", Name: "Toyota Motor Corp"},
	{Symbol: "SONY", Name: "Sony Group"},
	{Symbol: "SHEL", Name: "Shell plc"},
	{Symbol: "AZN", Name: "AstraZeneca"},
	{Symbol: "SAP", Name: "SAP SE"},
	{Symbol: "SHOP", Name: "Shopify Inc."},
	{Symbol: "SPOT", Name: "Spotify Technology"},
}
