package currency

// builtinEntries is the bundled currency table. Order matters: when two
// currencies match a transcript at the same text position, the earlier
// entry wins, so widely spoken currencies come first and claim the
// unqualified keywords ("dollars", "rupees", "kroner").
//
// Symbols are unique across the table. Currencies without a distinctive
// glyph use their ISO code as the symbol.
var builtinEntries = []Entry{
	// Major world currencies.
	{Code: "USD", Symbol: "$", DisplayName: "US Dollar", Keywords: []string{"dollar", "dollars", "buck", "bucks", "greenback", "greenbacks"}},
	{Code: "EUR", Symbol: "€", DisplayName: "Euro", Keywords: []string{"euro", "euros"}},
	{Code: "GBP", Symbol: "£", DisplayName: "British Pound", Keywords: []string{"pound", "pounds", "quid", "sterling"}},
	{Code: "INR", Symbol: "₹", DisplayName: "Indian Rupee", Keywords: []string{"rupee", "rupees", "rs"}},
	{Code: "AED", Symbol: "د.إ", DisplayName: "UAE Dirham", RightToLeft: true, Keywords: []string{"dirham", "dirhams", "dhs"}},
	{Code: "JPY", Symbol: "¥", DisplayName: "Japanese Yen", Keywords: []string{"yen"}},
	{Code: "CNY", Symbol: "CN¥", DisplayName: "Chinese Yuan", Keywords: []string{"yuan", "renminbi", "rmb", "kuai"}},
	{Code: "CHF", Symbol: "CHF", DisplayName: "Swiss Franc", Keywords: []string{"franc", "francs", "swiss franc", "swiss francs"}},
	{Code: "CAD", Symbol: "CA$", DisplayName: "Canadian Dollar", Keywords: []string{"canadian dollar", "canadian dollars", "loonie", "loonies"}},
	{Code: "AUD", Symbol: "A$", DisplayName: "Australian Dollar", Keywords: []string{"australian dollar", "australian dollars", "aussie dollar", "aussie dollars"}},
	{Code: "NZD", Symbol: "NZ$", DisplayName: "New Zealand Dollar", Keywords: []string{"new zealand dollar", "new zealand dollars", "kiwi dollar", "kiwi dollars"}},
	{Code: "SGD", Symbol: "S$", DisplayName: "Singapore Dollar", Keywords: []string{"singapore dollar", "singapore dollars", "sing dollar", "sing dollars"}},
	{Code: "HKD", Symbol: "HK$", DisplayName: "Hong Kong Dollar", Keywords: []string{"hong kong dollar", "hong kong dollars"}},
	{Code: "KRW", Symbol: "₩", DisplayName: "South Korean Won", Keywords: []string{"won"}},
	{Code: "RUB", Symbol: "₽", DisplayName: "Russian Ruble", Keywords: []string{"ruble", "rubles", "rouble", "roubles"}},
	{Code: "TRY", Symbol: "₺", DisplayName: "Turkish Lira", Keywords: []string{"lira", "liras", "turkish lira"}},
	{Code: "BRL", Symbol: "R$", DisplayName: "Brazilian Real", Keywords: []string{"real", "reais", "brazilian real"}},
	{Code: "MXN", Symbol: "MX$", DisplayName: "Mexican Peso", Keywords: []string{"peso", "pesos", "mexican peso", "mexican pesos"}},
	{Code: "ZAR", Symbol: "R", DisplayName: "South African Rand", Keywords: []string{"rand", "rands"}},
	{Code: "SEK", Symbol: "Skr", DisplayName: "Swedish Krona", Keywords: []string{"krona", "kronor", "swedish krona", "swedish kronor"}},
	{Code: "NOK", Symbol: "Nkr", DisplayName: "Norwegian Krone", Keywords: []string{"krone", "kroner", "norwegian krone", "norwegian kroner"}},
	{Code: "DKK", Symbol: "Dkr", DisplayName: "Danish Krone", Keywords: []string{"danish krone", "danish kroner"}},
	{Code: "PLN", Symbol: "zł", DisplayName: "Polish Zloty", Keywords: []string{"zloty", "zlotys", "zlote", "zlotych"}},
	{Code: "ILS", Symbol: "₪", DisplayName: "Israeli New Shekel", RightToLeft: true, Keywords: []string{"shekel", "shekels"}},
	{Code: "SAR", Symbol: "ر.س", DisplayName: "Saudi Riyal", RightToLeft: true, Keywords: []string{"riyal", "riyals", "saudi riyal", "saudi riyals"}},
	{Code: "QAR", Symbol: "ر.ق", DisplayName: "Qatari Riyal", RightToLeft: true, Keywords: []string{"qatari riyal", "qatari riyals"}},
	{Code: "KWD", Symbol: "د.ك", DisplayName: "Kuwaiti Dinar", RightToLeft: true, Keywords: []string{"dinar", "dinars", "kuwaiti dinar", "kuwaiti dinars"}},
	{Code: "BHD", Symbol: ".د.ب", DisplayName: "Bahraini Dinar", RightToLeft: true, Keywords: []string{"bahraini dinar", "bahraini dinars"}},
	{Code: "OMR", Symbol: "ر.ع.", DisplayName: "Omani Rial", RightToLeft: true, Keywords: []string{"rial", "rials", "omani rial", "omani rials"}},
	{Code: "THB", Symbol: "฿", DisplayName: "Thai Baht", Keywords: []string{"baht"}},
	{Code: "PHP", Symbol: "₱", DisplayName: "Philippine Peso", Keywords: []string{"philippine peso", "philippine pesos", "piso"}},
	{Code: "IDR", Symbol: "Rp", DisplayName: "Indonesian Rupiah", Keywords: []string{"rupiah"}},
	{Code: "MYR", Symbol: "RM", DisplayName: "Malaysian Ringgit", Keywords: []string{"ringgit", "ringgits"}},
	{Code: "VND", Symbol: "₫", DisplayName: "Vietnamese Dong", Keywords: []string{"dong"}},
	{Code: "PKR", Symbol: "₨", DisplayName: "Pakistani Rupee", Keywords: []string{"pakistani rupee", "pakistani rupees"}},
	{Code: "BDT", Symbol: "৳", DisplayName: "Bangladeshi Taka", Keywords: []string{"taka", "takas"}},
	{Code: "LKR", Symbol: "රු", DisplayName: "Sri Lankan Rupee", Keywords: []string{"sri lankan rupee", "sri lankan rupees"}},
	{Code: "NPR", Symbol: "रू", DisplayName: "Nepalese Rupee", Keywords: []string{"nepalese rupee", "nepalese rupees", "nepali rupee", "nepali rupees"}},
	{Code: "EGP", Symbol: "ج.م", DisplayName: "Egyptian Pound", RightToLeft: true, Keywords: []string{"egyptian pound", "egyptian pounds"}},
	{Code: "NGN", Symbol: "₦", DisplayName: "Nigerian Naira", Keywords: []string{"naira", "nairas"}},
	{Code: "KES", Symbol: "KSh", DisplayName: "Kenyan Shilling", Keywords: []string{"shilling", "shillings", "kenyan shilling", "kenyan shillings", "bob"}},
	{Code: "UAH", Symbol: "₴", DisplayName: "Ukrainian Hryvnia", Keywords: []string{"hryvnia", "hryvnias", "hryvnya"}},
	{Code: "CZK", Symbol: "Kč", DisplayName: "Czech Koruna", Keywords: []string{"koruna", "koruny", "korun"}},
	{Code: "HUF", Symbol: "Ft", DisplayName: "Hungarian Forint", Keywords: []string{"forint", "forints"}},
	{Code: "RON", Symbol: "lei", DisplayName: "Romanian Leu", Keywords: []string{"leu", "romanian leu", "romanian lei"}},
	{Code: "TWD", Symbol: "NT$", DisplayName: "New Taiwan Dollar", Keywords: []string{"taiwan dollar", "taiwan dollars"}},

	// Americas.
	{Code: "ARS", Symbol: "AR$", DisplayName: "Argentine Peso", Keywords: []string{"argentine peso", "argentine pesos"}},
	{Code: "CLP", Symbol: "CL$", DisplayName: "Chilean Peso", Keywords: []string{"chilean peso", "chilean pesos"}},
	{Code: "COP", Symbol: "CO$", DisplayName: "Colombian Peso", Keywords: []string{"colombian peso", "colombian pesos"}},
	{Code: "PEN", Symbol: "S/", DisplayName: "Peruvian Sol", Keywords: []string{"sol", "soles"}},
	{Code: "UYU", Symbol: "$U", DisplayName: "Uruguayan Peso", Keywords: []string{"uruguayan peso", "uruguayan pesos"}},
	{Code: "BOB", Symbol: "Bs", DisplayName: "Bolivian Boliviano", Keywords: []string{"boliviano", "bolivianos"}},
	{Code: "VES", Symbol: "Bs.S", DisplayName: "Venezuelan Bolivar", Keywords: []string{"bolivar", "bolivars", "bolivares"}},
	{Code: "PYG", Symbol: "₲", DisplayName: "Paraguayan Guarani", Keywords: []string{"guarani", "guaranis"}},
	{Code: "GTQ", Symbol: "Q", DisplayName: "Guatemalan Quetzal", Keywords: []string{"quetzal", "quetzales"}},
	{Code: "HNL", Symbol: "L", DisplayName: "Honduran Lempira", Keywords: []string{"lempira", "lempiras"}},
	{Code: "NIO", Symbol: "C$", DisplayName: "Nicaraguan Cordoba", Keywords: []string{"cordoba", "cordobas"}},
	{Code: "CRC", Symbol: "₡", DisplayName: "Costa Rican Colon", Keywords: []string{"colon", "colones"}},
	{Code: "PAB", Symbol: "B/.", DisplayName: "Panamanian Balboa", Keywords: []string{"balboa", "balboas"}},
	{Code: "DOP", Symbol: "RD$", DisplayName: "Dominican Peso", Keywords: []string{"dominican peso", "dominican pesos"}},
	{Code: "CUP", Symbol: "CU$", DisplayName: "Cuban Peso", Keywords: []string{"cuban peso", "cuban pesos"}},
	{Code: "JMD", Symbol: "J$", DisplayName: "Jamaican Dollar", Keywords: []string{"jamaican dollar", "jamaican dollars"}},
	{Code: "TTD", Symbol: "TT$", DisplayName: "Trinidad and Tobago Dollar", Keywords: []string{"trinidad dollar", "trinidad dollars"}},
	{Code: "BBD", Symbol: "Bds$", DisplayName: "Barbadian Dollar", Keywords: []string{"barbadian dollar", "barbadian dollars", "bajan dollar"}},
	{Code: "BSD", Symbol: "B$", DisplayName: "Bahamian Dollar", Keywords: []string{"bahamian dollar", "bahamian dollars"}},
	{Code: "BZD", Symbol: "BZ$", DisplayName: "Belize Dollar", Keywords: []string{"belize dollar", "belize dollars"}},
	{Code: "GYD", Symbol: "G$", DisplayName: "Guyanese Dollar", Keywords: []string{"guyanese dollar", "guyanese dollars"}},
	{Code: "SRD", Symbol: "Sr$", DisplayName: "Surinamese Dollar", Keywords: []string{"surinamese dollar", "surinamese dollars"}},
	{Code: "HTG", Symbol: "G", DisplayName: "Haitian Gourde", Keywords: []string{"gourde", "gourdes"}},
	{Code: "XCD", Symbol: "EC$", DisplayName: "East Caribbean Dollar", Keywords: []string{"east caribbean dollar", "east caribbean dollars"}},
	{Code: "AWG", Symbol: "Afl.", DisplayName: "Aruban Florin", Keywords: []string{"florin", "florins"}},
	{Code: "ANG", Symbol: "NAf.", DisplayName: "Netherlands Antillean Guilder", Keywords: []string{"guilder", "guilders"}},
	{Code: "KYD", Symbol: "CI$", DisplayName: "Cayman Islands Dollar", Keywords: []string{"cayman dollar", "cayman dollars"}},
	{Code: "BMD", Symbol: "BD$", DisplayName: "Bermudian Dollar", Keywords: []string{"bermudian dollar", "bermudian dollars"}},

	// Europe and Central Asia.
	{Code: "ISK", Symbol: "Ikr", DisplayName: "Icelandic Krona", Keywords: []string{"icelandic krona", "icelandic kronur"}},
	{Code: "BGN", Symbol: "лв", DisplayName: "Bulgarian Lev", Keywords: []string{"lev", "leva"}},
	{Code: "RSD", Symbol: "дин.", DisplayName: "Serbian Dinar", Keywords: []string{"serbian dinar", "serbian dinars"}},
	{Code: "MKD", Symbol: "ден", DisplayName: "Macedonian Denar", Keywords: []string{"denar", "denari"}},
	{Code: "BAM", Symbol: "KM", DisplayName: "Bosnian Convertible Mark", Keywords: []string{"convertible mark", "convertible marks"}},
	{Code: "MDL", Symbol: "MDL", DisplayName: "Moldovan Leu", Keywords: []string{"moldovan leu", "moldovan lei"}},
	{Code: "ALL", Symbol: "Lek", DisplayName: "Albanian Lek", Keywords: []string{"lek", "leke"}},
	{Code: "BYN", Symbol: "BYN", DisplayName: "Belarusian Ruble", Keywords: []string{"belarusian ruble", "belarusian rubles"}},
	{Code: "GEL", Symbol: "₾", DisplayName: "Georgian Lari", Keywords: []string{"lari"}},
	{Code: "AMD", Symbol: "֏", DisplayName: "Armenian Dram", Keywords: []string{"dram", "drams"}},
	{Code: "AZN", Symbol: "₼", DisplayName: "Azerbaijani Manat", Keywords: []string{"manat", "manats"}},
	{Code: "KZT", Symbol: "₸", DisplayName: "Kazakhstani Tenge", Keywords: []string{"tenge"}},
	{Code: "UZS", Symbol: "UZS", DisplayName: "Uzbekistani Som", Keywords: []string{"som", "sum"}},
	{Code: "KGS", Symbol: "KGS", DisplayName: "Kyrgyzstani Som", Keywords: []string{"kyrgyz som"}},
	{Code: "TJS", Symbol: "SM", DisplayName: "Tajikistani Somoni", Keywords: []string{"somoni"}},
	{Code: "TMT", Symbol: "TMT", DisplayName: "Turkmenistani Manat", Keywords: []string{"turkmen manat"}},
	{Code: "GIP", Symbol: "GI£", DisplayName: "Gibraltar Pound", Keywords: []string{"gibraltar pound", "gibraltar pounds"}},
	{Code: "FKP", Symbol: "FK£", DisplayName: "Falkland Islands Pound", Keywords: []string{"falkland pound", "falkland pounds"}},
	{Code: "SHP", Symbol: "SH£", DisplayName: "Saint Helena Pound", Keywords: []string{"saint helena pound", "saint helena pounds"}},

	// Middle East and North Africa.
	{Code: "IQD", Symbol: "ع.د", DisplayName: "Iraqi Dinar", RightToLeft: true, Keywords: []string{"iraqi dinar", "iraqi dinars"}},
	{Code: "JOD", Symbol: "د.ا", DisplayName: "Jordanian Dinar", RightToLeft: true, Keywords: []string{"jordanian dinar", "jordanian dinars", "jd"}},
	{Code: "YER", Symbol: "ر.ي", DisplayName: "Yemeni Rial", RightToLeft: true, Keywords: []string{"yemeni rial", "yemeni rials"}},
	{Code: "LBP", Symbol: "ل.ل", DisplayName: "Lebanese Pound", RightToLeft: true, Keywords: []string{"lebanese pound", "lebanese pounds"}},
	{Code: "SYP", Symbol: "ل.س", DisplayName: "Syrian Pound", RightToLeft: true, Keywords: []string{"syrian pound", "syrian pounds"}},
	{Code: "IRR", Symbol: "﷼", DisplayName: "Iranian Rial", RightToLeft: true, Keywords: []string{"iranian rial", "iranian rials", "toman", "tomans"}},
	{Code: "AFN", Symbol: "؋", DisplayName: "Afghan Afghani", RightToLeft: true, Keywords: []string{"afghani", "afghanis"}},
	{Code: "LYD", Symbol: "ل.د", DisplayName: "Libyan Dinar", RightToLeft: true, Keywords: []string{"libyan dinar", "libyan dinars"}},
	{Code: "DZD", Symbol: "د.ج", DisplayName: "Algerian Dinar", RightToLeft: true, Keywords: []string{"algerian dinar", "algerian dinars"}},
	{Code: "TND", Symbol: "د.ت", DisplayName: "Tunisian Dinar", RightToLeft: true, Keywords: []string{"tunisian dinar", "tunisian dinars"}},
	{Code: "MAD", Symbol: "د.م.", DisplayName: "Moroccan Dirham", RightToLeft: true, Keywords: []string{"moroccan dirham", "moroccan dirhams"}},
	{Code: "SDG", Symbol: "ج.س", DisplayName: "Sudanese Pound", RightToLeft: true, Keywords: []string{"sudanese pound", "sudanese pounds"}},
	{Code: "MRU", Symbol: "UM", DisplayName: "Mauritanian Ouguiya", Keywords: []string{"ouguiya"}},

	// Sub-Saharan Africa.
	{Code: "GHS", Symbol: "₵", DisplayName: "Ghanaian Cedi", Keywords: []string{"cedi", "cedis"}},
	{Code: "TZS", Symbol: "TSh", DisplayName: "Tanzanian Shilling", Keywords: []string{"tanzanian shilling", "tanzanian shillings"}},
	{Code: "UGX", Symbol: "USh", DisplayName: "Ugandan Shilling", Keywords: []string{"ugandan shilling", "ugandan shillings"}},
	{Code: "SOS", Symbol: "Sh.So.", DisplayName: "Somali Shilling", Keywords: []string{"somali shilling", "somali shillings"}},
	{Code: "RWF", Symbol: "FRw", DisplayName: "Rwandan Franc", Keywords: []string{"rwandan franc", "rwandan francs"}},
	{Code: "BIF", Symbol: "FBu", DisplayName: "Burundian Franc", Keywords: []string{"burundian franc", "burundian francs"}},
	{Code: "DJF", Symbol: "Fdj", DisplayName: "Djiboutian Franc", Keywords: []string{"djiboutian franc", "djiboutian francs"}},
	{Code: "KMF", Symbol: "CF", DisplayName: "Comorian Franc", Keywords: []string{"comorian franc", "comorian francs"}},
	{Code: "ETB", Symbol: "Br", DisplayName: "Ethiopian Birr", Keywords: []string{"birr"}},
	{Code: "ERN", Symbol: "Nfk", DisplayName: "Eritrean Nakfa", Keywords: []string{"nakfa"}},
	{Code: "MWK", Symbol: "MK", DisplayName: "Malawian Kwacha", Keywords: []string{"kwacha", "malawian kwacha"}},
	{Code: "ZMW", Symbol: "ZK", DisplayName: "Zambian Kwacha", Keywords: []string{"zambian kwacha"}},
	{Code: "BWP", Symbol: "P", DisplayName: "Botswana Pula", Keywords: []string{"pula"}},
	{Code: "NAD", Symbol: "N$", DisplayName: "Namibian Dollar", Keywords: []string{"namibian dollar", "namibian dollars"}},
	{Code: "SZL", Symbol: "E", DisplayName: "Swazi Lilangeni", Keywords: []string{"lilangeni", "emalangeni"}},
	{Code: "LSL", Symbol: "M", DisplayName: "Lesotho Loti", Keywords: []string{"loti", "maloti"}},
	{Code: "MZN", Symbol: "MT", DisplayName: "Mozambican Metical", Keywords: []string{"metical", "meticais"}},
	{Code: "AOA", Symbol: "Kz", DisplayName: "Angolan Kwanza", Keywords: []string{"kwanza", "kwanzas"}},
	{Code: "CDF", Symbol: "FC", DisplayName: "Congolese Franc", Keywords: []string{"congolese franc", "congolese francs"}},
	{Code: "GNF", Symbol: "FG", DisplayName: "Guinean Franc", Keywords: []string{"guinean franc", "guinean francs"}},
	{Code: "XOF", Symbol: "CFA", DisplayName: "West African CFA Franc", Keywords: []string{"cfa franc", "cfa francs", "cfa"}},
	{Code: "XAF", Symbol: "FCFA", DisplayName: "Central African CFA Franc", Keywords: []string{"central african franc", "central african francs"}},
	{Code: "XPF", Symbol: "₣", DisplayName: "CFP Franc", Keywords: []string{"cfp franc", "cfp francs"}},
	{Code: "GMD", Symbol: "D", DisplayName: "Gambian Dalasi", Keywords: []string{"dalasi", "dalasis"}},
	{Code: "SLL", Symbol: "Le", DisplayName: "Sierra Leonean Leone", Keywords: []string{"leone", "leones"}},
	{Code: "LRD", Symbol: "L$", DisplayName: "Liberian Dollar", Keywords: []string{"liberian dollar", "liberian dollars"}},
	{Code: "CVE", Symbol: "CVE", DisplayName: "Cape Verdean Escudo", Keywords: []string{"escudo", "escudos"}},
	{Code: "STN", Symbol: "Db", DisplayName: "Sao Tome and Principe Dobra", Keywords: []string{"dobra", "dobras"}},
	{Code: "MGA", Symbol: "Ar", DisplayName: "Malagasy Ariary", Keywords: []string{"ariary"}},
	{Code: "MUR", Symbol: "MUR", DisplayName: "Mauritian Rupee", Keywords: []string{"mauritian rupee", "mauritian rupees"}},
	{Code: "SCR", Symbol: "SR", DisplayName: "Seychellois Rupee", Keywords: []string{"seychellois rupee", "seychellois rupees"}},
	{Code: "SSP", Symbol: "SS£", DisplayName: "South Sudanese Pound", Keywords: []string{"south sudanese pound", "south sudanese pounds"}},
	{Code: "ZWL", Symbol: "Z$", DisplayName: "Zimbabwean Dollar", Keywords: []string{"zimbabwean dollar", "zimbabwean dollars"}},

	// Asia-Pacific.
	{Code: "MMK", Symbol: "Ks", DisplayName: "Myanmar Kyat", Keywords: []string{"kyat", "kyats"}},
	{Code: "KHR", Symbol: "៛", DisplayName: "Cambodian Riel", Keywords: []string{"riel", "riels"}},
	{Code: "LAK", Symbol: "₭", DisplayName: "Lao Kip", Keywords: []string{"kip"}},
	{Code: "MNT", Symbol: "₮", DisplayName: "Mongolian Tugrik", Keywords: []string{"tugrik", "tugriks", "togrog"}},
	{Code: "BND", Symbol: "BN$", DisplayName: "Brunei Dollar", Keywords: []string{"brunei dollar", "brunei dollars"}},
	{Code: "MOP", Symbol: "MOP$", DisplayName: "Macanese Pataca", Keywords: []string{"pataca", "patacas"}},
	{Code: "MVR", Symbol: "Rf", DisplayName: "Maldivian Rufiyaa", Keywords: []string{"rufiyaa"}},
	{Code: "BTN", Symbol: "Nu.", DisplayName: "Bhutanese Ngultrum", Keywords: []string{"ngultrum"}},
	{Code: "KPW", Symbol: "KPW", DisplayName: "North Korean Won", Keywords: []string{"north korean won"}},
	{Code: "FJD", Symbol: "FJ$", DisplayName: "Fijian Dollar", Keywords: []string{"fijian dollar", "fijian dollars"}},
	{Code: "PGK", Symbol: "K", DisplayName: "Papua New Guinean Kina", Keywords: []string{"kina"}},
	{Code: "SBD", Symbol: "SI$", DisplayName: "Solomon Islands Dollar", Keywords: []string{"solomon dollar", "solomon dollars"}},
	{Code: "TOP", Symbol: "T$", DisplayName: "Tongan Paanga", Keywords: []string{"paanga"}},
	{Code: "WST", Symbol: "WS$", DisplayName: "Samoan Tala", Keywords: []string{"tala"}},
	{Code: "VUV", Symbol: "VT", DisplayName: "Vanuatu Vatu", Keywords: []string{"vatu"}},
}
